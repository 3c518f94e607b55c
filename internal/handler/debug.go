package handler

import (
	"log/slog"
	"net/http"

	"github.com/replyguy/replyguy/internal/ctxkeys"
	"github.com/replyguy/replyguy/internal/model"
	"github.com/replyguy/replyguy/internal/respond"
	"github.com/replyguy/replyguy/internal/service"
)

// DebugHandler exposes what the server sees for the caller. Development only.
type DebugHandler struct {
	profileService  *service.ProfileService
	trackingService *service.TrackingService
}

func NewDebugHandler(profileService *service.ProfileService, trackingService *service.TrackingService) *DebugHandler {
	return &DebugHandler{
		profileService:  profileService,
		trackingService: trackingService,
	}
}

type debugConfig struct {
	AppEnv       string `json:"appEnv"`
	AuthProvider string `json:"authProvider"`
	DBDriver     string `json:"dbDriver"`
	HistoryDays  int    `json:"historyDays"`
}

type debugSessionResponse struct {
	Config              *debugConfig    `json:"config,omitempty"`
	Identity            *model.Identity `json:"identity"`
	Profile             *model.Profile  `json:"profile"`
	ProfileExists       bool            `json:"profileExists"`
	OnboardingCompleted bool            `json:"onboardingCompleted"`
	LogsCount           int             `json:"logsCount"`
	Logs                []*model.Log    `json:"logs"`
}

func (h *DebugHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.Identity(r.Context())

	profile, exists, err := h.profileService.Stored(r.Context(), user.ID)
	if err != nil {
		slog.Error("debug: failed to get profile", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	logs, err := h.trackingService.LatestLogs(r.Context(), user.ID)
	if err != nil {
		slog.Error("debug: failed to get logs", "error", err, "user_id", user.ID)
		respond.Error(w, http.StatusInternalServerError, "Failed to load logs")
		return
	}

	var server *debugConfig
	if cfg := ctxkeys.Config(r.Context()); cfg != nil {
		server = &debugConfig{
			AppEnv:       cfg.AppEnv,
			AuthProvider: cfg.AuthProvider,
			DBDriver:     cfg.DBDriver,
			HistoryDays:  cfg.HistoryDays,
		}
	}

	respond.JSON(w, http.StatusOK, debugSessionResponse{
		Config:              server,
		Identity:            user,
		Profile:             profile,
		ProfileExists:       exists,
		OnboardingCompleted: profile.OnboardingCompleted,
		LogsCount:           len(logs),
		Logs:                logs,
	})
}
