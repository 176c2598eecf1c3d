package storage

import "errors"

// ErrNotInitialized is returned by Load when no storage file exists yet.
var ErrNotInitialized = errors.New("storage not initialized, run 'soluna init' first")

// Provider is a durable local key-value store for the application's persisted
// state. Values are opaque serialized strings; callers own the encoding.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Entries
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// SetMany writes all pairs as a single atomic operation.
	SetMany(pairs map[string]string) error
	Remove(keys ...string) error

	// Utils
	GetConfigPath() string
}
