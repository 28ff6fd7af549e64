package handler

import (
	"net/http"

	"github.com/code-doctor/backend/internal/models"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// @Summary Liveness check
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router / [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "Backend is running.",
		Usage:   "POST /ask",
	})
}
