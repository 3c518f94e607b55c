package identity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/replyguy/replyguy/internal/model"
)

// SupabaseVerifier asks the auth server who a token belongs to.
type SupabaseVerifier struct {
	client *resty.Client
}

type supabaseUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewSupabaseVerifier(baseURL, anonKey string, timeout time.Duration) *SupabaseVerifier {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apikey", anonKey).
		SetHeader("Accept", "application/json")

	return &SupabaseVerifier{client: client}
}

func (v *SupabaseVerifier) Name() string {
	return "supabase"
}

func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*model.Identity, error) {
	var user supabaseUser

	resp, err := v.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		return nil, ErrInvalidToken
	case !resp.IsSuccess():
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	case user.ID == "":
		return nil, fmt.Errorf("%w: user without id", ErrInvalidToken)
	}

	return &model.Identity{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
