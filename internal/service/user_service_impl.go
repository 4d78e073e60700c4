package service

import (
	"context"

	"github.com/bagdasarian/users-service/internal/domain"
	"github.com/bagdasarian/users-service/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService создает сервис поверх уже открытого соединения, переданного в репозиторий
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.FindAll(ctx)
}
