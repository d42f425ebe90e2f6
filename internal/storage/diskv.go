package storage

import (
	"context"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskStore is the durable Store used by the application: one file per key
// under a base directory, managed by diskv. Keys are used verbatim as file
// names (flat layout), which is safe for every key the application derives.
type DiskStore struct {
	d *diskv.Diskv
}

// NewDiskStore opens (or creates) the record store rooted at basePath.
func NewDiskStore(basePath string) *DiskStore {
	return &DiskStore{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func (s *DiskStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *DiskStore) Set(ctx context.Context, key string, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *DiskStore) Remove(ctx context.Context, key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
