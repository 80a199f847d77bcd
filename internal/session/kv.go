package session

// KV is the persisted key-value collaborator backing the session store,
// the CLI's stand-in for browser local storage.
type KV interface {
	// Get returns the stored value, or "" when the key is absent.
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
