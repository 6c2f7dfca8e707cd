package storage

// Store is a durable key-value store for JSON-serializable values.
// Writes are best-effort: callers that can operate in-memory should log
// and continue when a write fails rather than surfacing the error.
type Store interface {
	// Set serializes value under key.
	Set(key string, value interface{}) error

	// Get deserializes the value stored under key into out.
	// Returns false when the key is absent.
	Get(key string, out interface{}) (bool, error)

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys lists stored keys with the given prefix.
	Keys(prefix string) ([]string, error)

	// Close releases underlying resources.
	Close() error
}
