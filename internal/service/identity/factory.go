package identity

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/replyguy/replyguy/internal/config"
)

// NewVerifier creates the token verifier selected by configuration, wrapped in
// a Redis cache when REDIS_URL is set.
func NewVerifier(cfg *config.Config) (Verifier, *redis.Client, error) {
	var verifier Verifier

	switch cfg.AuthProvider {
	case config.AuthProviderJWT:
		if cfg.JWTSecret == "" {
			slog.Warn("SUPABASE_JWT_SECRET is empty, every token will be rejected")
		}
		verifier = NewJWTVerifier(cfg.JWTSecret, cfg.JWTAudience)

	case config.AuthProviderSupabase:
		if cfg.SupabaseURL == "" {
			return nil, nil, fmt.Errorf("SUPABASE_URL is required when using the supabase auth provider")
		}
		verifier = NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.IdentityTimeout)

	default:
		return nil, nil, fmt.Errorf("unknown auth provider: %s (supported: jwt, supabase)", cfg.AuthProvider)
	}

	if cfg.RedisURL == "" {
		slog.Info("identity verifier initialized", "provider", verifier.Name())
		return verifier, nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	cached := NewCachedVerifier(verifier, client, cfg.IdentityCacheTTL)
	slog.Info("identity verifier initialized", "provider", cached.Name(), "cache_ttl", cfg.IdentityCacheTTL)
	return cached, client, nil
}
