package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDir   = "planka"
	fileName = "config.json"
)

// ErrCorrupt is returned when the config file exists but cannot be
// parsed. It is surfaced to the user, never silently repaired.
var ErrCorrupt = errors.New("config file is not valid JSON")

// Config is the persisted mapping. Empty fields are omitted from the
// file so a cleared value reads back as absent.
type Config struct {
	URL   string `json:"url,omitempty" koanf:"url"`
	Token string `json:"token,omitempty" koanf:"token"`
}

// Store persists the configuration at a single file path.
type Store struct {
	path string
}

// NewStore creates a store at path, or at DefaultPath when empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the per-user config file location. Uses
// XDG_CONFIG_HOME when set, otherwise $HOME/.config.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir, fileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to a relative path if home can't be determined.
		return filepath.Join(appDir, fileName)
	}
	return filepath.Join(home, ".config", appDir, fileName)
}

// Path returns the file path backing this store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted mapping. A missing file is an empty
// config, not an error; an unparseable file is ErrCorrupt.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return cfg, nil
}

// Save writes the full mapping with owner-only permissions. The
// containing directory is created if absent. The write goes to a temp
// file first and is renamed into place, so a crash mid-write cannot
// leave a half-written file behind.
func (s *Store) Save(cfg Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	// CreateTemp opens the file 0600 regardless of umask.
	tmp, err := os.CreateTemp(dir, fileName+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// URL returns the stored server URL, empty if unset.
func (s *Store) URL() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	return cfg.URL, nil
}

// Token returns the stored token, empty if unset.
func (s *Store) Token() (string, error) {
	cfg, err := s.Load()
	if err != nil {
		return "", err
	}
	return cfg.Token, nil
}

// SetURL stores the server URL via a full load-merge-save cycle.
// Last writer wins; there is no cross-process locking.
func (s *Store) SetURL(url string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.URL = url
	return s.Save(cfg)
}

// SetToken stores the token via a full load-merge-save cycle.
func (s *Store) SetToken(token string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.Token = token
	return s.Save(cfg)
}

// Clear deletes the persisted file. Deleting a file that does not
// exist is not an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
