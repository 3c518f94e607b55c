package identity

import (
	"testing"

	"github.com/replyguy/replyguy/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNewVerifier(t *testing.T) {
	v, client, err := NewVerifier(&config.Config{AuthProvider: config.AuthProviderJWT, JWTSecret: "s"})
	require.NoError(t, err)
	require.Nil(t, client)
	require.Equal(t, "jwt", v.Name())

	v, _, err = NewVerifier(&config.Config{AuthProvider: config.AuthProviderSupabase, SupabaseURL: "https://x.supabase.co"})
	require.NoError(t, err)
	require.Equal(t, "supabase", v.Name())

	_, _, err = NewVerifier(&config.Config{AuthProvider: config.AuthProviderSupabase})
	require.Error(t, err)

	_, _, err = NewVerifier(&config.Config{AuthProvider: "ldap"})
	require.Error(t, err)

	v, client, err = NewVerifier(&config.Config{AuthProvider: config.AuthProviderJWT, RedisURL: "redis://127.0.0.1:6379/0"})
	require.NoError(t, err)
	require.NotNil(t, client)
	require.Equal(t, "jwt+redis", v.Name())
	client.Close()
}
