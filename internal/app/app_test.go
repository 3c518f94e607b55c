package app

import (
	"testing"
	"time"

	"github.com/replyguy/replyguy/internal/config"
	"github.com/replyguy/replyguy/internal/testutil"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:              "development",
		AuthProvider:        config.AuthProviderJWT,
		JWTSecret:           "secret",
		RedisURL:            "redis://127.0.0.1:1/0",
		IdentityCacheTTL:    time.Minute,
		RateLimitRequests:   10,
		RateLimitIPRequests: 10,
		RateLimitWindow:     time.Minute,
		HistoryDays:         30,
	}
}

func TestCloseClosesDatabaseWhenRedisFails(t *testing.T) {
	a, err := NewWithDB(testConfig(), testutil.GetEmptyTestDB(t))
	require.NoError(t, err)
	require.NotNil(t, a.Redis)

	// A second Close on the Redis client fails.
	require.NoError(t, a.Redis.Close())

	require.Error(t, a.Close())
	require.Error(t, a.DB.Ping())
}

func TestNewWithDBRejectsBadTrustedProxies(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxies = []string{"10.0.0.0/99"}

	_, err := NewWithDB(cfg, testutil.GetEmptyTestDB(t))
	require.Error(t, err)
}
