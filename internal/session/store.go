// Package session persists the single editor snapshot. One blob, one
// key, overwritten wholesale on every save; there is no versioning and
// no migration, an unreadable blob simply loads as empty defaults.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"llmpad/internal/config"
	"llmpad/pkg"
)

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no saved session")

// Store holds exactly one snapshot.
type Store interface {
	Save(ctx context.Context, snap pkg.SessionSnapshot) error
	Load(ctx context.Context) (pkg.SessionSnapshot, error)
	// Exists reports whether a snapshot is present without loading it;
	// the UI uses it to disable Load at startup.
	Exists(ctx context.Context) bool
}

// New picks the store implied by the configuration: Redis when a URL
// is configured, a JSON file otherwise.
func New(ctx context.Context, cfg config.SessionConfig) (Store, error) {
	if cfg.RedisURL != "" {
		return NewRedisStore(ctx, cfg.RedisURL, cfg.Key)
	}
	return NewFileStore(cfg.Path), nil
}

// FileStore keeps the snapshot in a single JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, snap pkg.SessionSnapshot) error {
	data, err := sonic.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Load(ctx context.Context) (pkg.SessionSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return pkg.SessionSnapshot{}, ErrNoSnapshot
		}
		return pkg.SessionSnapshot{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var snap pkg.SessionSnapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		// Incompatible blob: fall back to defaults rather than failing.
		return pkg.SessionSnapshot{}, nil
	}
	return snap, nil
}

func (s *FileStore) Exists(ctx context.Context) bool {
	_, err := os.Stat(s.path)
	return err == nil
}
