package service

import (
	"context"

	"github.com/bagdasarian/users-service/internal/domain"
)

type UserService interface {
	// FindAll возвращает всех пользователей без фильтрации и сортировки
	FindAll(ctx context.Context) ([]*domain.User, error)
}
