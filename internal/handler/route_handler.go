package handler

import (
	"net/http"

	"github.com/bagdasarian/users-service/internal/domain"
)

// NotFound и MethodNotAllowed отдают ошибки маршрутизации в том же JSON, что и остальные
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.handleError(w, r, domain.ErrNotFound)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.handleError(w, r, domain.ErrMethodNotAllowed)
}
