package api

import (
	"context"
	"fmt"
	"net/http"

	"shopctl/internal/models"
	"shopctl/internal/types"
)

// AuthService talks to the /auth endpoints and answers local session
// questions.
//
// Register and Login return the auth payload without writing the session
// store; persisting the token is the caller's responsibility, while Logout
// clears locally. The asymmetry is deliberate and matches the wire
// contract's division of labor with the calling UI.
type AuthService struct {
	client  *Client
	session types.SessionStore
}

// RegisterInput is the /auth/register.php request body.
type RegisterInput struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"full_name,omitempty"`
}

// LoginInput is the /auth/login.php request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and returns the issued token and user record.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.AuthPayload, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid register input: %w", err)
	}

	env, err := s.client.Request(ctx, http.MethodPost, "/auth/register.php", input, nil)
	if err != nil {
		return nil, err
	}

	var payload models.AuthPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Login authenticates with email and password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.AuthPayload, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid login input: %w", err)
	}

	env, err := s.client.Request(ctx, http.MethodPost, "/auth/login.php", input, nil)
	if err != nil {
		return nil, err
	}

	var payload models.AuthPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Logout clears the local session. No backend call is made; the token is
// simply forgotten.
func (s *AuthService) Logout() error {
	return s.session.ClearSession()
}

// CurrentUser returns the cached user summary, or nil when logged out.
func (s *AuthService) CurrentUser() *models.UserSummary {
	return s.session.GetCurrentUser()
}

// IsAuthenticated reports whether a token is currently persisted.
func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}
