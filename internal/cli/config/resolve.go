package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides.
// PLANKA_URL and PLANKA_TOKEN map to the url and token fields.
const EnvPrefix = "PLANKA_"

// Session holds the connection settings resolved for one invocation.
type Session struct {
	URL   string `koanf:"url"`
	Token string `koanf:"token"`
}

// ErrReadBytesNotSupported is returned when ReadBytes is called on the
// map provider; koanf uses Read() for map-backed providers.
var ErrReadBytesNotSupported = errors.New("config: ReadBytes not supported by map provider, use Read() instead")

// mapProvider is a koanf provider backed by a plain map, used to give
// explicit flag values the highest priority.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}

// Resolve layers the persisted file, PLANKA_* environment variables
// and explicit flag values into a Session. Later sources override
// earlier ones; nothing is written back. A corrupt config file is
// reported, not skipped.
func (s *Store) Resolve(flagURL, flagToken string) (Session, error) {
	k := koanf.New(".")

	if _, err := os.Stat(s.path); err == nil {
		if err := k.Load(file.Provider(s.path), kjson.Parser()); err != nil {
			return Session{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Session{}, err
	}

	transform := func(name string) string {
		return strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return Session{}, fmt.Errorf("load env: %w", err)
	}

	overrides := map[string]any{}
	if flagURL != "" {
		overrides["url"] = flagURL
	}
	if flagToken != "" {
		overrides["token"] = flagToken
	}
	if len(overrides) > 0 {
		if err := k.Load(mapProvider(overrides), nil); err != nil {
			return Session{}, fmt.Errorf("load flags: %w", err)
		}
	}

	var sess Session
	if err := k.Unmarshal("", &sess); err != nil {
		return Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}
