package mood

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Store persists Settings as a TOML file, rewritten wholesale on every save.
type Store struct {
	path string
}

// NewStore places the settings file at <dir>/mood_tracker/default.toml.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, "mood_tracker", "default.toml")}
}

func (s *Store) Path() string { return s.path }

// Load returns empty Settings when the file does not exist. A file that cannot
// be read or decoded also yields empty Settings, along with the error.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings %s: %w", s.path, err)
	}

	var settings Settings
	if _, err := toml.Decode(string(data), &settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings %s: %w", s.path, err)
	}
	return settings, nil
}

func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return os.Rename(tmp, s.path)
}
