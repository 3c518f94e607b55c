package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/replyguy/replyguy/internal/ctxkeys"
	"github.com/replyguy/replyguy/internal/model"
	"github.com/replyguy/replyguy/internal/respond"
	"github.com/replyguy/replyguy/internal/service"
	"github.com/replyguy/replyguy/internal/validation"
)

type TrackingHandler struct {
	trackingService *service.TrackingService
}

func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

type trackingResponse struct {
	Success       bool `json:"success,omitempty"`
	RepliesCount  int  `json:"repliesCount"`
	FollowerCount int  `json:"followerCount"`
	DailyGoal     int  `json:"dailyGoal"`
	GoalMet       bool `json:"goalMet"`
}

func newTrackingResponse(today *model.TodayLog) trackingResponse {
	return trackingResponse{
		RepliesCount:  today.Log.RepliesMade,
		FollowerCount: today.Log.FollowerCount,
		DailyGoal:     today.DailyGoal,
		GoalMet:       today.GoalMet,
	}
}

type updateTrackingRequest struct {
	Type  string          `json:"type" validate:"required,oneof=replies followers"`
	Value json.RawMessage `json:"value"`
	Date  string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// Today returns the caller's log for ?date=, creating it if needed.
func (h *TrackingHandler) Today(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	date := r.URL.Query().Get("date")
	if err := validation.ValidateLogDate(date); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date")
		return
	}

	today, err := h.trackingService.TodayLog(r.Context(), user.ID, date)
	if err != nil {
		slog.Error("failed to get today's log", "error", err, "user_id", user.ID, "date", date)
		respond.Error(w, http.StatusInternalServerError, "Failed to load tracking data")
		return
	}

	respond.JSON(w, http.StatusOK, newTrackingResponse(today))
}

// Update sets one metric of an existing day to an absolute value.
func (h *TrackingHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	var req updateTrackingRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.Struct(req); err != nil {
		slog.Debug("invalid tracking update", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusBadRequest, "Invalid tracking type or date")
		return
	}

	value, err := validation.ParseCount(req.Value)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Value must be a non-negative number")
		return
	}

	today, err := h.trackingService.UpdateMetric(r.Context(), user.ID, req.Date, req.Type, value)
	if err != nil {
		slog.Error("failed to update tracking", "error", err, "user_id", user.ID, "type", req.Type)
		respond.Error(w, http.StatusInternalServerError, "Failed to update tracking")
		return
	}

	resp := newTrackingResponse(today)
	resp.Success = true
	respond.JSON(w, http.StatusOK, resp)
}
