package handler

import (
	"context"

	"github.com/bagdasarian/users-service/internal/service"
	"github.com/rs/zerolog"
)

// Pinger проверяет доступность БД, *sql.DB подходит напрямую
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	userService service.UserService
	db          Pinger
	logger      zerolog.Logger
}

func NewHandler(
	userService service.UserService,
	db Pinger,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		userService: userService,
		db:          db,
		logger:      logger,
	}
}
