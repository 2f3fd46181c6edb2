package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultCacheSize = 256
	URLPrefix        = "/storage/"
)

// BlobStorage holds uploaded binaries (contact photos, company logos)
// outside the relational schema. Keys look like "contacts/<uuid>.png".
type BlobStorage interface {
	Store(category string, data []byte, ext string) (string, error)
	Delete(key string) error
	Open(key string) ([]byte, error)
	Exists(key string) bool
	URLFor(key string) string
}

// DiskStorage keeps blobs as files under a base directory with an LRU
// cache in front of reads.
type DiskStorage struct {
	baseDir string

	mu    sync.Mutex
	cache *lru.Cache[string, []byte]
}

func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	cache, err := lru.New[string, []byte](DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	return &DiskStorage{baseDir: baseDir, cache: cache}, nil
}

func (s *DiskStorage) Store(category string, data []byte, ext string) (string, error) {
	key := newKey(category, ext)

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("store blob %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store blob %s: %w", key, err)
	}

	s.mu.Lock()
	s.cache.Add(key, data)
	s.mu.Unlock()

	return key, nil
}

func (s *DiskStorage) Delete(key string) error {
	s.mu.Lock()
	s.cache.Remove(key)
	s.mu.Unlock()

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}

	return nil
}

func (s *DiskStorage) Open(key string) ([]byte, error) {
	s.mu.Lock()
	data, ok := s.cache.Get(key)
	s.mu.Unlock()
	if ok {
		return data, nil
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("open blob %s: %w", key, err)
	}

	s.mu.Lock()
	s.cache.Add(key, data)
	s.mu.Unlock()

	return data, nil
}

func (s *DiskStorage) Exists(key string) bool {
	s.mu.Lock()
	_, ok := s.cache.Get(key)
	s.mu.Unlock()
	if ok {
		return true
	}

	_, err := os.Stat(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	return err == nil
}

func (s *DiskStorage) URLFor(key string) string {
	return URLPrefix + key
}

func newKey(category, ext string) string {
	name := uuid.NewString()
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return category + "/" + name
}
