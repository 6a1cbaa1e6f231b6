// Package securestore implements the device's secure key-value facility on
// top of a single JSON file with owner-only permissions.
package securestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"pantry/internal/domain/repository"
)

const storeFile = "credentials.json"

// FileStore stores named string values on disk. Writes replace the whole
// file atomically so a crash never leaves a half-written store behind.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore is the constructor for FileStore. The directory is created
// on first write if it does not exist.
func NewFileStore(dir string) repository.CredentialStore {
	return &FileStore{dir: dir}
}

// Get retrieves the value for a key, or repository.ErrKeyNotFound if absent.
func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return "", err
	}
	value, ok := m[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}
	return value, nil
}

// Set writes the value for a key, overwriting any previous value.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	m[key] = value
	return s.write(m)
}

// SetMany writes several keys as a single atomic file replace.
func (s *FileStore) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}
	for key, value := range values {
		m[key] = value
	}
	return s.write(m)
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, storeFile)
}

func (s *FileStore) read() (map[string]string, error) {
	m := make(map[string]string)

	raw, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read secure store")
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "decode secure store")
	}
	return m, nil
}

func (s *FileStore) write(m map[string]string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return errors.Wrap(err, "create secure store dir")
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encode secure store")
	}

	// Write to a sibling temp file and rename over the store so readers
	// never observe a partial write.
	tmp, err := os.CreateTemp(s.dir, storeFile+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp store file")
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "chmod temp store file")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temp store file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temp store file")
	}
	if err := os.Rename(tmpName, s.path()); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "replace secure store")
	}
	return nil
}
