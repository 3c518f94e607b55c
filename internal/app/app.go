package app

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/replyguy/replyguy/internal/config"
	"github.com/replyguy/replyguy/internal/db"
	"github.com/replyguy/replyguy/internal/middleware"
	"github.com/replyguy/replyguy/internal/repository"
	"github.com/replyguy/replyguy/internal/service"
	"github.com/replyguy/replyguy/internal/service/identity"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	Redis           *redis.Client // nil without REDIS_URL
	Verifier        identity.Verifier
	AuthService     *service.AuthService
	ProfileService  *service.ProfileService
	TrackingService *service.TrackingService
	RateLimiter     *middleware.RateLimiter // per user
	IPRateLimiter   *middleware.RateLimiter // per client IP, ahead of auth
	ClientIP        *middleware.ClientIPResolver
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	a, err := NewWithDB(cfg, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	return a, nil
}

// NewWithDB wires repositories and services over an already migrated database.
func NewWithDB(cfg *config.Config, database *sqlx.DB) (*App, error) {
	// Repositories
	profileRepository := repository.NewProfileRepository(database)
	logRepository := repository.NewLogRepository(database)

	// Identity
	verifier, redisClient, err := identity.NewVerifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity verifier: %v", err)
	}

	clientIP, err := middleware.NewClientIPResolver(cfg.TrustedProxies)
	if err != nil {
		closeRedis(redisClient)
		return nil, fmt.Errorf("failed to parse TRUSTED_PROXIES: %v", err)
	}

	// Services
	authService := service.NewAuthService(verifier)
	profileService := service.NewProfileService(profileRepository)
	trackingService := service.NewTrackingService(logRepository, profileRepository, cfg.HistoryDays)

	return &App{
		Cfg:             cfg,
		DB:              database,
		Redis:           redisClient,
		Verifier:        verifier,
		AuthService:     authService,
		ProfileService:  profileService,
		TrackingService: trackingService,
		RateLimiter:     middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		IPRateLimiter:   middleware.NewRateLimiter(cfg.RateLimitIPRequests, cfg.RateLimitWindow),
		ClientIP:        clientIP,
	}, nil
}

// Close releases Redis and the database, reporting every failure.
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}

func closeRedis(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
