// Package store provides the key→string persistence the editor relies on:
// a synchronous get/set contract with no transactional guarantees, the
// server-side stand-in for the browser's local storage.
package store

import (
	"os"
	"path/filepath"
	"sync"

	"athena/pkg/utils"
)

// Store is a synchronous key-value store of string values.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// FileStore keeps one JSON file per key under a data directory, so each
// collection stays independently persisted and independently loadable.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates (if needed) the data directory and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, utils.SanitizeFilename(key)+".json")
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := utils.Load[string](s.path(key))
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utils.Save(s.path(key), value)
}

// MemStore is the in-memory variant used by tests and ephemeral sessions.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}
