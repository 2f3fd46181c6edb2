package storage

import (
	"fmt"
	"sync"
)

// MemoryStorage is an in-memory BlobStorage used by tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailStore makes the next Store call fail, for exercising the
	// blob-failure paths.
	FailStore bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Store(category string, data []byte, ext string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailStore {
		return "", fmt.Errorf("store blob: storage unavailable")
	}

	key := newKey(category, ext)
	buf := make([]byte, len(data))
	copy(buf, data)
	s.blobs[key] = buf

	return key, nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

func (s *MemoryStorage) Open(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("open blob %s: not found", key)
	}
	return data, nil
}

func (s *MemoryStorage) Exists(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.blobs[key]
	return ok
}

func (s *MemoryStorage) URLFor(key string) string {
	return URLPrefix + key
}

// Len reports how many blobs are held, for test assertions.
func (s *MemoryStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.blobs)
}
