package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopctl/internal/models"
	"shopctl/internal/session"
)

func newFileStore(t *testing.T) (*session.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return session.NewStore(session.NewFileKV(path), zerolog.Nop()), path
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newFileStore(t)

	name := "Ada L"
	user := &models.UserSummary{
		ID:       "user-1",
		Email:    "ada@example.com",
		FullName: &name,
		Role:     models.RoleCustomer,
	}

	require.NoError(t, store.SetSession("tok-abc", user))

	assert.Equal(t, "tok-abc", store.GetToken())
	got := store.GetCurrentUser()
	require.NotNil(t, got)
	assert.Equal(t, user, got)
}

func TestSessionSurvivesNewStoreOnSameFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	first := session.NewStore(session.NewFileKV(path), zerolog.Nop())
	require.NoError(t, first.SetSession("tok-abc", &models.UserSummary{ID: "user-1", Email: "a@b.co"}))

	// A second store over the same file sees the persisted session, the
	// way separate CLI invocations do.
	second := session.NewStore(session.NewFileKV(path), zerolog.Nop())
	assert.Equal(t, "tok-abc", second.GetToken())
	require.NotNil(t, second.GetCurrentUser())
	assert.Equal(t, "a@b.co", second.GetCurrentUser().Email)
}

func TestIsAuthenticated(t *testing.T) {
	store, _ := newFileStore(t)

	assert.False(t, store.IsAuthenticated(), "fresh store starts logged out")

	require.NoError(t, store.SetSession("tok", &models.UserSummary{ID: "u", Email: "a@b.co"}))
	assert.True(t, store.IsAuthenticated())

	require.NoError(t, store.ClearSession())
	assert.False(t, store.IsAuthenticated(), "clear logs out immediately")
	assert.Empty(t, store.GetToken())
	assert.Nil(t, store.GetCurrentUser())
}

func TestClearSessionIsIdempotent(t *testing.T) {
	store, _ := newFileStore(t)
	require.NoError(t, store.ClearSession())
	require.NoError(t, store.ClearSession())
	assert.False(t, store.IsAuthenticated())
}

func TestMalformedStoredUserDegradesToNil(t *testing.T) {
	kv := session.NewMemoryKV()
	store := session.NewStore(kv, zerolog.Nop())

	require.NoError(t, store.SetSession("tok", &models.UserSummary{ID: "u", Email: "a@b.co"}))
	require.NoError(t, kv.Set("shop_user", "{not json"))

	// A corrupted user record degrades to logged-out-user, not a panic.
	assert.Nil(t, store.GetCurrentUser())
	assert.True(t, store.IsAuthenticated(), "the token is untouched")
}

func TestCorruptSessionFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	store := session.NewStore(session.NewFileKV(path), zerolog.Nop())
	assert.Empty(t, store.GetToken())
	assert.False(t, store.IsAuthenticated())

	// And it recovers on the next write.
	require.NoError(t, store.SetSession("tok", &models.UserSummary{ID: "u", Email: "a@b.co"}))
	assert.Equal(t, "tok", store.GetToken())
}

func TestFileKVCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	store := session.NewStore(session.NewFileKV(path), zerolog.Nop())

	require.NoError(t, store.SetSession("tok", &models.UserSummary{ID: "u", Email: "a@b.co"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "session file holds a live token")
}
