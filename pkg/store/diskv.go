package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

// Diskv stores one file per key under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv opens (and creates if needed) a diskv store rooted at basePath.
func NewDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

// BasePath reports the directory the store writes to.
func (s *Diskv) BasePath() string {
	return s.basePath
}

func (s *Diskv) Read(key string) ([]byte, error) {
	if !s.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (s *Diskv) Write(key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Diskv) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (s *Diskv) Keys() ([]string, error) {
	done := make(chan struct{})
	defer close(done)
	var keys []string
	for key := range s.d.Keys(done) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Diskv) Close() error {
	return nil
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
