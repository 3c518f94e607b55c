package handler

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/replyguy/replyguy/internal/db"
	"github.com/replyguy/replyguy/internal/respond"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Healthz reports liveness and database reachability. No auth.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	err := db.Healthy(r.Context(), h.db)
	if err != nil {
		slog.Error("health check failed", "error", err)
		respond.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	respond.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
