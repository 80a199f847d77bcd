package types

import "shopctl/internal/models"

// SessionStore holds the current bearer token and cached user profile.
// The API client reads it on every request; only the caller writes it.
type SessionStore interface {
	// GetToken returns the persisted token, or "" when logged out.
	// Absence is a valid result, not an error.
	GetToken() string
	// GetCurrentUser returns the cached user summary, or nil when absent
	// or unreadable.
	GetCurrentUser() *models.UserSummary
	// SetSession persists both fields together.
	SetSession(token string, user *models.UserSummary) error
	// ClearSession removes both fields.
	ClearSession() error
	// IsAuthenticated reports whether a non-empty token is persisted.
	IsAuthenticated() bool
}
