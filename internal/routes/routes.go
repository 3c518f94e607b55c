package routes

import (
	"net/http"

	"github.com/replyguy/replyguy/internal/app"
	"github.com/replyguy/replyguy/internal/handler"
	"github.com/replyguy/replyguy/internal/middleware"
	"github.com/replyguy/replyguy/internal/respond"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	logs := handler.NewLogHandler(app.TrackingService)
	tracking := handler.NewTrackingHandler(app.TrackingService)
	user := handler.NewUserHandler(app.ProfileService)
	onboarding := handler.NewOnboardingHandler(app.ProfileService)
	stats := handler.NewStatsHandler(app.TrackingService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Logs
	mux.HandleFunc("GET /logs", middleware.RequireAuth(logs.List))
	mux.HandleFunc("POST /logs", middleware.RequireAuth(logs.Create))

	// Tracking
	mux.HandleFunc("GET /tracking", middleware.RequireAuth(tracking.Today))
	mux.HandleFunc("POST /tracking", middleware.RequireAuth(tracking.Update))

	// Profile
	mux.HandleFunc("GET /user", middleware.RequireAuth(user.Profile))
	mux.HandleFunc("POST /user", middleware.RequireAuth(user.UpdateGoal))
	mux.HandleFunc("GET /onboarding-status", middleware.RequireAuth(onboarding.Status))
	mux.HandleFunc("POST /onboarding", middleware.RequireAuth(onboarding.Complete))

	// Stats
	mux.HandleFunc("GET /stats", middleware.RequireAuth(stats.Summary))

	if app.Cfg.DebugEndpoints {
		debug := handler.NewDebugHandler(app.ProfileService, app.TrackingService)
		mux.HandleFunc("GET /debug-session", middleware.RequireAuth(debug.Session))
	}

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Not found")
	})

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.CORS(app.Cfg.CORSAllowedOrigins, false),        // Answers preflight before auth
		middleware.RateLimitByIP(app.IPRateLimiter, app.ClientIP), // Caps identity-service calls
		middleware.AuthMiddleware(app.AuthService),
		middleware.RequestLogging, // Needs the identity from AuthMiddleware
		middleware.RateLimit(app.RateLimiter, app.ClientIP),
	)

	return handler
}
