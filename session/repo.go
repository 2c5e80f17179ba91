package session

// Store defines durable storage for the single seller session. Implementations
// persist the token and profile as a pair: Save writes both, Clear removes
// both, and Load never returns one half without the other.
type Store interface {
	// Load returns the persisted session, or nil when no usable session is
	// stored. Malformed persisted data is discarded, not surfaced.
	Load() (*Session, error)

	// Save persists the session, replacing any previous one.
	Save(session *Session) error

	// Clear removes the persisted session. Clearing an empty store is a no-op.
	Clear() error
}
