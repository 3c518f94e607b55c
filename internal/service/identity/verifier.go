package identity

import (
	"context"
	"errors"

	"github.com/replyguy/replyguy/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUnavailable  = errors.New("identity service unavailable")
)

// Verifier turns a bearer token into the identity it was issued to.
type Verifier interface {
	// Verify returns ErrInvalidToken for tokens the identity service rejects
	Verify(ctx context.Context, token string) (*model.Identity, error)

	// Name returns the verifier name (e.g., "jwt", "supabase")
	Name() string
}
