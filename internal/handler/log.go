package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/replyguy/replyguy/internal/ctxkeys"
	"github.com/replyguy/replyguy/internal/respond"
	"github.com/replyguy/replyguy/internal/service"
	"github.com/replyguy/replyguy/internal/validation"
)

type LogHandler struct {
	trackingService *service.TrackingService
}

func NewLogHandler(trackingService *service.TrackingService) *LogHandler {
	return &LogHandler{
		trackingService: trackingService,
	}
}

type createLogRequest struct {
	RepliesCount  json.RawMessage `json:"repliesCount"`
	FollowerCount json.RawMessage `json:"followerCount"`
	Date          string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type createLogResponse struct {
	Success       bool `json:"success"`
	RepliesMade   int  `json:"replies_made"`
	FollowerCount int  `json:"follower_count"`
	GoalMet       bool `json:"goal_met"`
}

// List returns the caller's history window, oldest first.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	logs, err := h.trackingService.RecentLogs(r.Context(), user.ID, "")
	if err != nil {
		slog.Error("failed to list logs", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to load logs")
		return
	}

	respond.JSON(w, http.StatusOK, logs)
}

// Create records a full day in one submission.
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	var req createLogRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.Struct(req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid date")
		return
	}

	replies, err := validation.ParseCount(req.RepliesCount)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Replies count must be a non-negative number")
		return
	}
	followers, err := validation.ParseCount(req.FollowerCount)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Follower count must be a non-negative number")
		return
	}

	log, err := h.trackingService.CreateLog(r.Context(), user.ID, req.Date, replies, followers)
	if errors.Is(err, service.ErrAlreadyLogged) {
		respond.Error(w, http.StatusBadRequest, "Already logged today")
		return
	}
	if err != nil {
		slog.Error("failed to create log", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to save log")
		return
	}

	respond.JSON(w, http.StatusOK, createLogResponse{
		Success:       true,
		RepliesMade:   log.RepliesMade,
		FollowerCount: log.FollowerCount,
		GoalMet:       log.GoalMet,
	})
}
