package repository

import (
	"context"

	"github.com/bagdasarian/users-service/internal/domain"
)

type UserRepository interface {
	// FindAll возвращает все строки таблицы users в порядке, который отдает БД
	FindAll(ctx context.Context) ([]*domain.User, error)
}
