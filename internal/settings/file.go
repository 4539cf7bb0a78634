package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/smartsales365/console/pkg/models"
)

// FileStore keeps the configuration blob in a JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. Empty path falls back to
// DefaultPath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &FileStore{path: path}, nil
}

// DefaultPath returns the per-user location of the configuration file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "smartsales365", StorageKey+".json"), nil
}

func (s *FileStore) Load(_ context.Context) (models.StoreSettings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.DefaultStoreSettings(), nil
	}
	if err != nil {
		return models.DefaultStoreSettings(), fmt.Errorf("reading settings file: %w", err)
	}
	return decode(data), nil
}

func (s *FileStore) Save(_ context.Context, cfg models.StoreSettings) error {
	data, err := encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Compile-time check that FileStore implements Store.
var _ Store = (*FileStore)(nil)
