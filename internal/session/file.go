package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Snapshot is the serialized form of the session store.
type Snapshot struct {
	Authenticated bool  `toml:"authenticated"`
	User          *User `toml:"user,omitempty"`
}

// snapshotFile is the on-disk shape. Version guards against a future schema
// change: snapshots written by a newer layout load as logged-out instead of
// half-parsed.
type snapshotFile struct {
	Version int `toml:"version"`
	Snapshot
}

// SchemaVersion is the current session file layout.
const SchemaVersion = 1

const defaultSessionPath = "~/.config/vista/session.toml"

// DefaultPath returns the default session file location.
func DefaultPath() string {
	return defaultSessionPath
}

// FileStore persists session snapshots as a single TOML blob, overwritten
// wholesale on every mutation.
type FileStore struct {
	path string
}

// NewFileStore builds a store for path; empty uses the default location.
func NewFileStore(path string) *FileStore {
	if strings.TrimSpace(path) == "" {
		path = defaultSessionPath
	}
	return &FileStore{path: path}
}

// Load reads the persisted snapshot. A missing, unreadable, malformed, or
// wrong-version file degrades to the logged-out state rather than failing
// startup.
func (s *FileStore) Load() Snapshot {
	resolved, err := expandPath(s.path)
	if err != nil {
		return Snapshot{}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Snapshot{}
	}

	var file snapshotFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Snapshot{}
	}
	if file.Version != SchemaVersion {
		return Snapshot{}
	}
	if file.User == nil {
		file.Authenticated = false
	}
	return file.Snapshot
}

// Save writes snap to disk, creating directories as needed.
func (s *FileStore) Save(snap Snapshot) error {
	resolved, err := expandPath(s.path)
	if err != nil {
		return fmt.Errorf("resolve session path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := toml.Marshal(snapshotFile{Version: SchemaVersion, Snapshot: snap})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
