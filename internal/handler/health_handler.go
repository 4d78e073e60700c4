package handler

import (
	"fmt"
	"net/http"

	"github.com/bagdasarian/users-service/internal/domain"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.handleError(w, r, fmt.Errorf("%w: %v", domain.ErrUnavailable, err))
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
