package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/replyguy/replyguy/internal/model"
	"github.com/replyguy/replyguy/internal/service/identity"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

type AuthService struct {
	verifier identity.Verifier
}

func NewAuthService(verifier identity.Verifier) *AuthService {
	return &AuthService{
		verifier: verifier,
	}
}

// Authenticate resolves an Authorization header value to the caller's identity.
// Every failure, including an unreachable identity service, is ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*model.Identity, error) {
	token, ok := BearerToken(header)
	if !ok {
		return nil, ErrUnauthorized
	}

	ident, err := s.verifier.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrUnavailable) {
			slog.Error("identity service unavailable", "error", err, "provider", s.verifier.Name())
		} else {
			slog.Debug("token rejected", "error", err, "provider", s.verifier.Name())
		}
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	return ident, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
