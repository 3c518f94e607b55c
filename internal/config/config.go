package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthProviderJWT      = "jwt"
	AuthProviderSupabase = "supabase"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Identity ("jwt" verifies locally, "supabase" asks the auth server)
	AuthProvider     string
	JWTSecret        string
	JWTAudience      string
	SupabaseURL      string
	SupabaseAnonKey  string
	IdentityTimeout  time.Duration
	RedisURL         string // Optional: caches verified tokens
	IdentityCacheTTL time.Duration

	// HTTP
	CORSAllowedOrigins  []string
	RateLimitRequests   int // per user, after auth
	RateLimitIPRequests int // per client IP, before auth
	RateLimitWindow     time.Duration
	TrustedProxies      []string // IPs/CIDRs allowed to set X-Forwarded-For
	DebugEndpoints      bool

	// Tracking
	HistoryDays int

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "ReplyGuy"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/replyguy.db?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"),

		// Identity
		AuthProvider:     envString("AUTH_PROVIDER", AuthProviderJWT),
		JWTSecret:        envString("SUPABASE_JWT_SECRET", ""),
		JWTAudience:      envString("SUPABASE_JWT_AUDIENCE", "authenticated"),
		SupabaseURL:      strings.TrimRight(envString("SUPABASE_URL", ""), "/"),
		SupabaseAnonKey:  envString("SUPABASE_ANON_KEY", ""),
		IdentityTimeout:  envDuration("IDENTITY_TIMEOUT", 5*time.Second),
		RedisURL:         envString("REDIS_URL", ""),
		IdentityCacheTTL: envDuration("IDENTITY_CACHE_TTL", time.Minute),

		// HTTP
		CORSAllowedOrigins:  envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitRequests:   envInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitIPRequests: envInt("RATE_LIMIT_IP_REQUESTS", 600),
		RateLimitWindow:     envDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustedProxies:      envList("TRUSTED_PROXIES", nil),
		DebugEndpoints:      envBool("DEBUG_ENDPOINTS", envString("APP_ENV", "development") == "development"),

		// Tracking
		HistoryDays: envInt("HISTORY_DAYS", 30),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures the identity provider is fully configured.
// Development tolerates a missing secret so the server can boot for local work.
func validateProduction(cfg *Config) {
	switch cfg.AuthProvider {
	case AuthProviderJWT:
		if cfg.JWTSecret == "" {
			slog.Error("production deployment requires SUPABASE_JWT_SECRET",
				"hint", "or set AUTH_PROVIDER=supabase with SUPABASE_URL and SUPABASE_ANON_KEY")
			os.Exit(1)
		}
	case AuthProviderSupabase:
		if cfg.SupabaseURL == "" || cfg.SupabaseAnonKey == "" {
			slog.Error("production deployment requires SUPABASE_URL and SUPABASE_ANON_KEY")
			os.Exit(1)
		}
	}
	if cfg.DebugEndpoints {
		slog.Warn("debug endpoints are enabled in production")
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList reads a comma-separated list, dropping empty items.
func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and connection strings are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:            c.AppName,
		AppEnv:             c.AppEnv,
		Port:               c.Port,
		DBDriver:           c.DBDriver,
		AuthProvider:       c.AuthProvider,
		SupabaseURL:        c.SupabaseURL,
		CORSAllowedOrigins: c.CORSAllowedOrigins,
		DebugEndpoints:     c.DebugEndpoints,
		HistoryDays:        c.HistoryDays,
	}
}
