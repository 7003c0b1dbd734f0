package apps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// supported lists every streaming app the assistant can route offerings to,
// in display order. All of them are enabled by default.
var supported = []string{
	"Netflix",
	"Amazon Prime Video",
	"Hulu",
	"Disney+",
	"ESPN+",
	"Max",
	"Paramount+",
	"YouTube Premium",
}

// Supported returns the full list of supported apps in display order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default enabled-apps set: everything supported.
func Default() []string {
	return Supported()
}

// Contains reports whether the given display name is in the enabled set.
func Contains(enabled []string, name string) bool {
	for _, app := range enabled {
		if app == name {
			return true
		}
	}
	return false
}

// IsSupported reports whether name is a supported app display name.
func IsSupported(name string) bool {
	return Contains(supported, name)
}

type state struct {
	Enabled []string `toml:"enabled"`
}

// Store persists the enabled-apps set as a TOML state file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("apps state path required")
	}
	return &Store{path: path}, nil
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// Load reads the enabled-apps set. A missing state file means the user never
// customized anything, so the default set is returned.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read apps state: %w", err)
	}

	var st state
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parse apps state: %w", err)
	}
	return normalize(st.Enabled), nil
}

// Save writes the enabled-apps set, taking a file lock so concurrent CLI
// invocations serialize their writes.
func (s *Store) Save(enabled []string) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create apps state directory: %w", err)
		}
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock apps state: %w", err)
	}
	defer lock.Unlock()

	data, err := toml.Marshal(state{Enabled: normalize(enabled)})
	if err != nil {
		return fmt.Errorf("encode apps state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write apps state: %w", err)
	}
	return nil
}

// Enable adds a supported app to the set and persists the result.
func (s *Store) Enable(name string) ([]string, error) {
	name, err := canonical(name)
	if err != nil {
		return nil, err
	}
	enabled, err := s.Load()
	if err != nil {
		return nil, err
	}
	if !Contains(enabled, name) {
		enabled = normalize(append(enabled, name))
		if err := s.Save(enabled); err != nil {
			return nil, err
		}
	}
	return enabled, nil
}

// Disable removes an app from the set and persists the result.
func (s *Store) Disable(name string) ([]string, error) {
	name, err := canonical(name)
	if err != nil {
		return nil, err
	}
	enabled, err := s.Load()
	if err != nil {
		return nil, err
	}
	if Contains(enabled, name) {
		filtered := enabled[:0]
		for _, app := range enabled {
			if app != name {
				filtered = append(filtered, app)
			}
		}
		enabled = filtered
		if err := s.Save(enabled); err != nil {
			return nil, err
		}
	}
	return enabled, nil
}

// Reset restores the default set and persists it.
func (s *Store) Reset() ([]string, error) {
	enabled := Default()
	if err := s.Save(enabled); err != nil {
		return nil, err
	}
	return enabled, nil
}

// canonical resolves a user-supplied app name to its supported display name,
// tolerating case differences.
func canonical(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	for _, app := range supported {
		if strings.EqualFold(app, trimmed) {
			return app, nil
		}
	}
	return "", fmt.Errorf("unknown app %q (supported: %s)", name, strings.Join(supported, ", "))
}

// normalize filters unknown entries and restores display order.
func normalize(enabled []string) []string {
	seen := make(map[string]struct{}, len(enabled))
	for _, app := range enabled {
		if resolved, err := canonical(app); err == nil {
			seen[resolved] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for _, app := range supported {
		if _, ok := seen[app]; ok {
			out = append(out, app)
		}
	}
	return out
}
