package external

import (
	"fmt"

	"weatherwidget.app/internal/ports"
	"weatherwidget.app/pkg/errors"
)

// Store types accepted by the factory
const (
	StoreTypeMemory = "memory"
	StoreTypeRedis  = "redis"
)

type KeyValueStoreFactory struct{}

func NewKeyValueStoreFactory() *KeyValueStoreFactory {
	return &KeyValueStoreFactory{}
}

// CreateKeyValueStore builds the store selected by cfg.Type. Both
// implementations also satisfy Ping and GetStats for health reporting.
func (f *KeyValueStoreFactory) CreateKeyValueStore(cfg *ports.StoreConfig) (ports.KeyValueStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Type {
	case StoreTypeMemory:
		return NewMemoryKeyValueStore(), nil
	case StoreTypeRedis:
		return NewRedisKeyValueStore(&cfg.Redis)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Type), nil)
	}
}
