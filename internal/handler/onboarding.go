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

type OnboardingHandler struct {
	profileService *service.ProfileService
}

func NewOnboardingHandler(profileService *service.ProfileService) *OnboardingHandler {
	return &OnboardingHandler{
		profileService: profileService,
	}
}

type completeOnboardingRequest struct {
	DailyGoal        json.RawMessage `json:"dailyGoal"`
	CurrentFollowers json.RawMessage `json:"currentFollowers"`
}

type completeOnboardingResponse struct {
	Success bool           `json:"success"`
	Profile *model.Profile `json:"profile"`
}

// Status is the server's answer to "has this user onboarded"; clients may
// cache it but this is the source of truth.
func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	profile, err := h.profileService.Profile(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to get onboarding status", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to load onboarding status")
		return
	}

	respond.JSON(w, http.StatusOK, newProfileResponse(profile))
}

func (h *OnboardingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	var req completeOnboardingRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := validation.ParseDailyGoal(req.DailyGoal)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Daily goal must be a number of at least 1")
		return
	}
	followers, err := validation.ParseCount(req.CurrentFollowers)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Follower count must be a non-negative number")
		return
	}

	profile, err := h.profileService.CompleteOnboarding(r.Context(), user.ID, goal, followers)
	if err != nil {
		slog.Error("failed to complete onboarding", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	slog.Info("onboarding completed", "user_id", user.ID)
	respond.JSON(w, http.StatusOK, completeOnboardingResponse{
		Success: true,
		Profile: profile,
	})
}
