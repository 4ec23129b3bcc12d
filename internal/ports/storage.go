package ports

import "context"

// KeyValueStore is the durable key-value store backing all persisted client state.
// Values are opaque bytes; callers JSON-encode them.
type KeyValueStore interface {
	// Get returns nil, nil when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}

// Fixed keys under which client state is persisted.
const (
	KeyUser           = "user"
	KeyAuthToken      = "auth_token"
	KeyLocalUsers     = "local_users"
	KeyJournalEntries = "journal_entries"
	KeyAppSettings    = "app_settings"
	// KeyCompletionPrefix is followed by a feature name, e.g. "completion:onboarding".
	KeyCompletionPrefix = "completion:"
)
