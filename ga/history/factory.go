package history

import (
	"fmt"
	"strings"
)

// NewStore builds the backend named by kind, ignoring case. "none" yields a
// nil Store, which Recorder treats as metrics-only.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch strings.ToLower(kind) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(sqlitePath), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes store when its backend holds resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
