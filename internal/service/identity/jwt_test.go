package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestJWTVerifier(t *testing.T) {
	verifier := NewJWTVerifier("secret", "authenticated")

	token, err := verifier.Issue("user-1", "a@example.com", time.Minute)
	require.NoError(t, err)

	ident, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "user-1", ident.ID)
	require.Equal(t, "a@example.com", ident.Email)
	require.WithinDuration(t, time.Now().Add(time.Minute), ident.ExpiresAt, 2*time.Second)
}

func TestJWTVerifierRejects(t *testing.T) {
	verifier := NewJWTVerifier("secret", "authenticated")

	expired, err := verifier.Issue("user-1", "", -time.Minute)
	require.NoError(t, err)
	_, err = verifier.Verify(context.Background(), expired)
	require.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewJWTVerifier("not secret", "authenticated").Issue("user-1", "", time.Minute)
	require.NoError(t, err)
	_, err = verifier.Verify(context.Background(), other)
	require.ErrorIs(t, err, ErrInvalidToken)

	wrongAudience, err := NewJWTVerifier("secret", "anon").Issue("user-1", "", time.Minute)
	require.NoError(t, err)
	_, err = verifier.Verify(context.Background(), wrongAudience)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = verifier.Verify(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierRequiresSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTVerifier("secret", "").Verify(context.Background(), signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTVerifierRejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTVerifier("secret", "").Verify(context.Background(), signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}
