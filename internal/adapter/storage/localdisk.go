package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runprhq/runpr-backend/internal/config"
)

// LocalDisk stores objects as files under a base directory and serves them
// through the application's /media/ route. Paths are slash-separated keys
// relative to the base directory.
type LocalDisk struct {
	basePath  string
	publicURL string
}

// NewLocalDisk creates the store and its base directory.
func NewLocalDisk(cfg config.StorageConfig) (*LocalDisk, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", cfg.BasePath, err)
	}

	return &LocalDisk{
		basePath:  cfg.BasePath,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// BasePath returns the root directory objects are stored under.
func (s *LocalDisk) BasePath() string {
	return s.basePath
}

// Upload writes data to basePath/path, creating parent directories as
// needed. Existing objects are overwritten.
func (s *LocalDisk) Upload(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", path, err)
	}

	return nil
}

// PublicURL returns the URL the object is reachable at.
func (s *LocalDisk) PublicURL(path string) string {
	return s.publicURL + "/" + strings.TrimPrefix(path, "/")
}

// resolve maps a key to a filesystem path, rejecting traversal outside the
// base directory.
func (s *LocalDisk) resolve(path string) (string, error) {
	clean := filepath.Clean("/" + filepath.FromSlash(path))
	full := filepath.Join(s.basePath, clean)
	if !strings.HasPrefix(full, filepath.Clean(s.basePath)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid object path %q", path)
	}
	return full, nil
}
