package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/replyguy/replyguy/internal/model"
)

const cacheKeyPrefix = "replyguy:identity:"

// CachedVerifier remembers successful verifications in Redis for ttl, or until
// the token expires if that is sooner. Tokens without a known expiry are not
// cached. Redis errors never fail a request; the inner verifier is asked instead.
type CachedVerifier struct {
	inner  Verifier
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func NewCachedVerifier(inner Verifier, client *redis.Client, ttl time.Duration) *CachedVerifier {
	return &CachedVerifier{
		inner:  inner,
		client: client,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (v *CachedVerifier) Name() string {
	return v.inner.Name() + "+redis"
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	key := cacheKey(token)

	data, err := v.client.Get(ctx, key).Bytes()
	if err == nil {
		var ident model.Identity
		if json.Unmarshal(data, &ident) == nil && ident.ID != "" && v.now().Before(ident.ExpiresAt) {
			return &ident, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("identity cache read failed", "error", err)
	}

	ident, err := v.inner.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	v.store(ctx, key, token, ident)
	return ident, nil
}

func (v *CachedVerifier) store(ctx context.Context, key, token string, ident *model.Identity) {
	entry := *ident
	if entry.ExpiresAt.IsZero() {
		entry.ExpiresAt = tokenExpiry(token)
	}

	ttl := min(v.ttl, entry.ExpiresAt.Sub(v.now()))
	if ttl <= 0 {
		return
	}

	data, err := json.Marshal(entry)
	if err == nil {
		err = v.client.Set(ctx, key, data, ttl).Err()
	}
	if err != nil {
		slog.Warn("identity cache write failed", "error", err, "user_id", ident.ID)
	}
}

// tokenExpiry reads the exp claim of an already verified JWT access token.
// It returns the zero time for opaque tokens or tokens without exp.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// cacheKey hashes the token so raw credentials never reach Redis.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
