package interfaces

import domaintypes "pearpass-host/internal/domain/types"

// KVStore is the opaque encrypted key-value store contract consumed by the
// core (spec.md §6). It is owned and implemented by the surrounding vault
// subsystem; internal/vaultkv ships one concrete implementation so this
// repo is runnable standalone, but the core only ever depends on this
// interface.
type KVStore interface {
	Status() (initialized bool, err error)
	// Init is idempotent; "already initialized" must not be an error.
	Init() error
	Get(key string) (domaintypes.KVValue, error)
	Put(key string, value string) error
}
