package service

import (
	"context"
	"testing"
	"time"

	"github.com/replyguy/replyguy/internal/service/identity"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer   abc ", token: "abc", ok: true},
		{header: "abc"},
		{header: "Basic abc"},
		{header: "Bearer "},
		{header: ""},
	}

	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		require.Equal(t, tt.ok, ok, tt.header)
		require.Equal(t, tt.token, token, tt.header)
	}
}

func TestAuthenticate(t *testing.T) {
	verifier := identity.NewJWTVerifier("secret", "authenticated")
	s := NewAuthService(verifier)

	token, err := verifier.Issue("user-1", "a@example.com", time.Minute)
	require.NoError(t, err)

	ident, err := s.Authenticate(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, "user-1", ident.ID)

	_, err = s.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = s.Authenticate(context.Background(), "Bearer garbage")
	require.ErrorIs(t, err, ErrUnauthorized)
}
