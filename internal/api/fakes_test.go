package api_test

import (
	"shopctl/internal/models"
	"shopctl/internal/types"
)

// fakeSession is a test-only session store that counts writes so tests can
// assert which operations touch it.
type fakeSession struct {
	token      string
	user       *models.UserSummary
	setCalls   int
	clearCalls int
}

func (f *fakeSession) GetToken() string { return f.token }

func (f *fakeSession) GetCurrentUser() *models.UserSummary { return f.user }

func (f *fakeSession) SetSession(token string, user *models.UserSummary) error {
	f.setCalls++
	f.token = token
	f.user = user
	return nil
}

func (f *fakeSession) ClearSession() error {
	f.clearCalls++
	f.token = ""
	f.user = nil
	return nil
}

func (f *fakeSession) IsAuthenticated() bool { return f.token != "" }

var _ types.SessionStore = (*fakeSession)(nil)
