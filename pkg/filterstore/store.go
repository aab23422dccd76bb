package filterstore

import (
	"context"
	"errors"
)

// KeyPrefix prefix of the key the filter selections of a session are stored under
const KeyPrefix = "jobs_dashboard_filters_v2"

// ErrNotFound nothing is stored under the key
var ErrNotFound = errors.New("filter state not found")

// Store Persists serialized filter selections
type Store interface {
	// Load Get the value stored under key, ErrNotFound when there is none
	Load(ctx context.Context, key string) ([]byte, error)
	// Save Store value under key
	Save(ctx context.Context, key string, value []byte) error
	// Close Release the resources held by the store
	Close() error
}

// SessionKey The key of the filter selections of a session
func SessionKey(sessionID string) string {
	return KeyPrefix + "/" + sessionID
}
