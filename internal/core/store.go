package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrFileNotFound is returned when the target document does not exist.
var ErrFileNotFound = errors.New("file not found")

// DocumentStore abstracts document reads and writes for testability.
type DocumentStore interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// FileStore implements DocumentStore on the local filesystem.
type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// Write overwrites path in place with a single write, keeping its mode.
// There is no temp file or rename; a failure here can leave the file truncated.
func (s *FileStore) Write(path, content string) error {
	perm := s.mode(path)
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (*FileStore) mode(path string) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return 0644
	}
	return info.Mode().Perm()
}

// InMemoryStore implements DocumentStore for testing (no disk I/O).
// Every write is recorded so tests can assert that none happened.
type InMemoryStore struct {
	mu     sync.Mutex
	files  map[string]string
	writes []string
}

func NewInMemoryStore(files map[string]string) *InMemoryStore {
	cpy := make(map[string]string, len(files))
	for k, v := range files {
		cpy[k] = v
	}
	return &InMemoryStore{files: cpy}
}

func (ms *InMemoryStore) Read(path string) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	content, ok := ms.files[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return content, nil
}

func (ms *InMemoryStore) Write(path, content string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.files[path] = content
	ms.writes = append(ms.writes, path)
	return nil
}

// Writes returns the paths written so far, in order.
func (ms *InMemoryStore) Writes() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	cpy := make([]string, len(ms.writes))
	copy(cpy, ms.writes)
	return cpy
}
