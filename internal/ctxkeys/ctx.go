package ctxkeys

import (
	"context"

	"github.com/replyguy/replyguy/internal/config"
	"github.com/replyguy/replyguy/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	IdentityKey contextKey = "identity"
	ConfigKey   contextKey = "config"
)

func Identity(ctx context.Context) *model.Identity {
	ident, _ := ctx.Value(IdentityKey).(*model.Identity)
	return ident
}

func WithIdentity(ctx context.Context, ident *model.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, ident)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
