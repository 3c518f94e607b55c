package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/replyguy/replyguy/internal/model"
	"github.com/stretchr/testify/require"
)

// countingVerifier delegates to next, or accepts the opaque token "good".
type countingVerifier struct {
	next  Verifier
	calls int
}

func (v *countingVerifier) Name() string {
	return "counting"
}

func (v *countingVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	v.calls++
	if v.next != nil {
		return v.next.Verify(ctx, token)
	}
	if token != "good" {
		return nil, ErrInvalidToken
	}
	return &model.Identity{ID: "user-1", Email: "a@example.com"}, nil
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { client.Close() })
	return m, client
}

func issue(t *testing.T, v *JWTVerifier, ttl time.Duration) string {
	t.Helper()

	token, err := v.Issue("user-1", "a@example.com", ttl)
	require.NoError(t, err)
	return token
}

func TestCachedVerifierFallsBackWithoutRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	jwtv := NewJWTVerifier("secret", "")
	inner := &countingVerifier{next: jwtv}
	verifier := NewCachedVerifier(inner, client, time.Minute)
	require.Equal(t, "counting+redis", verifier.Name())

	ident, err := verifier.Verify(context.Background(), issue(t, jwtv, time.Hour))
	require.NoError(t, err)
	require.Equal(t, "user-1", ident.ID)

	_, err = verifier.Verify(context.Background(), "bad")
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Equal(t, 2, inner.calls)
}

func TestCachedVerifierCachesValidTokens(t *testing.T) {
	m, client := newTestRedis(t)

	jwtv := NewJWTVerifier("secret", "")
	inner := &countingVerifier{next: jwtv}
	verifier := NewCachedVerifier(inner, client, time.Minute)
	token := issue(t, jwtv, time.Hour)

	for i := 0; i < 3; i++ {
		ident, err := verifier.Verify(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, "user-1", ident.ID)
	}
	require.Equal(t, 1, inner.calls)
	require.Equal(t, time.Minute, m.TTL(cacheKey(token)))

	// Rejections are not cached.
	for i := 0; i < 2; i++ {
		_, err := verifier.Verify(context.Background(), "bad")
		require.ErrorIs(t, err, ErrInvalidToken)
	}
	require.Equal(t, 3, inner.calls)
}

func TestCachedVerifierTTLCappedAtTokenExpiry(t *testing.T) {
	m, client := newTestRedis(t)

	jwtv := NewJWTVerifier("secret", "")
	verifier := NewCachedVerifier(jwtv, client, time.Hour)
	token := issue(t, jwtv, 10*time.Second)

	_, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)

	ttl := m.TTL(cacheKey(token))
	require.Greater(t, ttl, time.Duration(0))
	require.LessOrEqual(t, ttl, 10*time.Second)

	m.FastForward(11 * time.Second)
	require.False(t, m.Exists(cacheKey(token)))
}

func TestCachedVerifierRejectsExpiredToken(t *testing.T) {
	_, client := newTestRedis(t)

	jwtv := NewJWTVerifier("secret", "")
	verifier := NewCachedVerifier(jwtv, client, time.Minute)
	token := issue(t, jwtv, time.Second)

	_, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)

	time.Sleep(2100 * time.Millisecond)

	ident, err := verifier.Verify(context.Background(), token)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Nil(t, ident)
}

func TestCachedVerifierSkipsTokensWithoutExpiry(t *testing.T) {
	m, client := newTestRedis(t)

	inner := &countingVerifier{}
	verifier := NewCachedVerifier(inner, client, time.Minute)

	for i := 0; i < 2; i++ {
		_, err := verifier.Verify(context.Background(), "good")
		require.NoError(t, err)
	}
	require.Equal(t, 2, inner.calls)
	require.False(t, m.Exists(cacheKey("good")))
}

func TestTokenExpiry(t *testing.T) {
	jwtv := NewJWTVerifier("secret", "")
	token := issue(t, jwtv, time.Hour)

	exp := tokenExpiry(token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)
	require.True(t, tokenExpiry("opaque").IsZero())
}

func TestCacheKeyHidesToken(t *testing.T) {
	key := cacheKey("secret-token")
	require.NotContains(t, key, "secret-token")
	require.Equal(t, key, cacheKey("secret-token"))
	require.NotEqual(t, key, cacheKey("other-token"))
}
