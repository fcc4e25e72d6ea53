package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON file, rewritten wholesale on
// each Set. Loading tolerates a missing or unparsable file by starting
// empty; callers fall back to their seeded defaults either way.
type FileStore struct {
	mu   sync.RWMutex
	path string
	m    map[string]string
}

func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStore{
		path: filepath.Join(dataDir, "state.json"),
		m:    map[string]string{},
	}
	s.load()
	return s, nil
}

func (s *FileStore) load() {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var loaded map[string]string
	if err := json.Unmarshal(b, &loaded); err != nil || loaded == nil {
		return
	}
	s.m = loaded
}

func (s *FileStore) saveLocked() error {
	b, err := json.MarshalIndent(s.m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return s.saveLocked()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return s.saveLocked()
}
