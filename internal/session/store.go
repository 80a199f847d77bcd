package session

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"shopctl/internal/models"
	"shopctl/internal/types"
)

const (
	tokenKey = "shop_token"
	userKey  = "shop_user"
)

// Store keeps the current token and user summary in a KV collaborator.
// It is constructed once at startup and injected into the API client
// instead of living as ambient global state.
type Store struct {
	kv     KV
	logger zerolog.Logger
}

// NewStore creates a session store over kv.
func NewStore(kv KV, logger zerolog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// GetToken returns the persisted token, or "" when none is stored.
// Read failures degrade to "logged out" rather than erroring.
func (s *Store) GetToken() string {
	token, err := s.kv.Get(tokenKey)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session token read failed")
		return ""
	}
	return token
}

// GetCurrentUser returns the cached user summary. Absent or malformed
// stored JSON yields nil, so a corrupted session file degrades to
// "logged out" instead of failing the whole command.
func (s *Store) GetCurrentUser() *models.UserSummary {
	raw, err := s.kv.Get(userKey)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session user read failed")
		return nil
	}
	if raw == "" {
		return nil
	}

	var user models.UserSummary
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Debug().Err(err).Msg("stored user record is malformed")
		return nil
	}
	return &user
}

// SetSession persists the token and user together.
func (s *Store) SetSession(token string, user *models.UserSummary) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	if err := s.kv.Set(tokenKey, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist user record: %w", err)
	}
	return nil
}

// ClearSession removes both fields.
func (s *Store) ClearSession() error {
	if err := s.kv.Remove(tokenKey); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	if err := s.kv.Remove(userKey); err != nil {
		return fmt.Errorf("failed to remove user record: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-empty token is persisted.
func (s *Store) IsAuthenticated() bool {
	return s.GetToken() != ""
}

// Compile-time interface check
var _ types.SessionStore = (*Store)(nil)
