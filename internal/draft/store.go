package draft

import (
	"os"
	"path/filepath"
)

// DraftKey is the single well-known key the active session draft lives
// under. There is never more than one draft at rest.
const DraftKey = "active-draft"

// Store is a minimal durable key-value port. The recovery-window rules in
// Manager are written against this interface so they stay testable without
// touching the filesystem.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// FileStore keeps one file per key under the config dir.
type FileStore struct {
	dir string
}

func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(home, ".config", "forja", "state")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0644)
}

func (s *FileStore) Remove(key string) {
	os.Remove(s.path(key))
}

// MemStore is the in-memory Store used by tests. SetErr, when non-nil, is
// returned from every Set to simulate a full/broken backing store.
type MemStore struct {
	Data     map[string]string
	SetErr   error
	SetCalls int
}

func NewMemStore() *MemStore {
	return &MemStore{Data: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	v, ok := s.Data[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.SetCalls++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Data[key] = value
	return nil
}

func (s *MemStore) Remove(key string) {
	delete(s.Data, key)
}
