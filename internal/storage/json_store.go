package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type snapshot struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// JSONStore keeps all entries in a single JSON file. Every mutation rewrites
// the whole snapshot.
type JSONStore struct {
	path string
	snap *snapshot
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.snap = &snapshot{
		Version: 1,
		Entries: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.snap = &snapshot{}
	if err := json.Unmarshal(data, s.snap); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.snap.Entries == nil {
		s.snap.Entries = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.snap == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	value, ok := s.snap.Entries[key]
	return value, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.snap.Entries[key] = value
	return s.save()
}

func (s *JSONStore) SetMany(pairs map[string]string) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	// The whole snapshot is written once, so the pairs land atomically.
	for key, value := range pairs {
		s.snap.Entries[key] = value
	}
	return s.save()
}

func (s *JSONStore) Remove(keys ...string) error {
	if s.snap == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, key := range keys {
		delete(s.snap.Entries, key)
	}
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple soluna processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
