package handler

import (
	"log/slog"
	"net/http"

	"github.com/replyguy/replyguy/internal/ctxkeys"
	"github.com/replyguy/replyguy/internal/respond"
	"github.com/replyguy/replyguy/internal/service"
	"github.com/replyguy/replyguy/internal/validation"
)

type StatsHandler struct {
	trackingService *service.TrackingService
}

func NewStatsHandler(trackingService *service.TrackingService) *StatsHandler {
	return &StatsHandler{
		trackingService: trackingService,
	}
}

func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	date := r.URL.Query().Get("date")
	if err := validation.ValidateLogDate(date); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date")
		return
	}

	stats, err := h.trackingService.Stats(r.Context(), user.ID, date)
	if err != nil {
		slog.Error("failed to compute stats", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	respond.JSON(w, http.StatusOK, stats)
}
