package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

const sessionKeyPrefix = "session:"

// SessionStoreAdapter bridges the generic KeyValueStore to the widget SessionStore
type SessionStoreAdapter struct {
	store ports.KeyValueStore
}

// NewSessionStoreAdapter creates a session store over a key-value store
func NewSessionStoreAdapter(store ports.KeyValueStore) *SessionStoreAdapter {
	return &SessionStoreAdapter{store: store}
}

// Load returns the stored session or a NotFound error
func (a *SessionStoreAdapter) Load(ctx context.Context, sessionID string) (*ports.SessionData, error) {
	if sessionID == "" {
		return nil, errors.NewValidationError("session id cannot be empty")
	}

	raw, err := a.store.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}

	var data ports.SessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.NewStorageError("failed to deserialize session", err)
	}

	return &data, nil
}

// Save replaces the stored session and refreshes its expiry
func (a *SessionStoreAdapter) Save(ctx context.Context, sessionID string, data *ports.SessionData, ttl time.Duration) error {
	if sessionID == "" {
		return errors.NewValidationError("session id cannot be empty")
	}
	if data == nil {
		return errors.NewValidationError("session data cannot be nil")
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return errors.NewStorageError("failed to serialize session", err)
	}

	return a.store.Set(ctx, sessionKeyPrefix+sessionID, raw, ttl)
}

func (a *SessionStoreAdapter) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.NewValidationError("session id cannot be empty")
	}
	return a.store.Delete(ctx, sessionKeyPrefix+sessionID)
}
