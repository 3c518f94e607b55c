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

type UserHandler struct {
	profileService *service.ProfileService
}

func NewUserHandler(profileService *service.ProfileService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
	}
}

type profileResponse struct {
	DailyGoal            int  `json:"dailyGoal"`
	CurrentFollowerCount int  `json:"currentFollowerCount"`
	OnboardingCompleted  bool `json:"onboardingCompleted"`
}

func newProfileResponse(p *model.Profile) profileResponse {
	return profileResponse{
		DailyGoal:            p.Goal(),
		CurrentFollowerCount: p.CurrentFollowerCount,
		OnboardingCompleted:  p.OnboardingCompleted,
	}
}

type updateGoalRequest struct {
	DailyGoal json.RawMessage `json:"dailyGoal"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	profile, err := h.profileService.Profile(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to get profile", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	respond.JSON(w, http.StatusOK, newProfileResponse(profile))
}

func (h *UserHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	var req updateGoalRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := validation.ParseDailyGoal(req.DailyGoal)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Daily goal must be a number of at least 1")
		return
	}

	err = h.profileService.SetDailyGoal(r.Context(), user.ID, goal)
	if err != nil {
		slog.Error("failed to update daily goal", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to update daily goal")
		return
	}

	slog.Info("daily goal updated", "user_id", user.ID, "daily_goal", goal)
	respond.JSON(w, http.StatusOK, successResponse{Success: true})
}
