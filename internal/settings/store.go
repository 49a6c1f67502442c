// Package settings records the last applied command per target so a
// boot-time restore step can re-apply it. Writes are best-effort by
// contract: the hardware has already changed when persistence runs.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/gz302-tools/gz302ctl/lights"
)

// DefaultPath is where the privileged install places the settings file.
const DefaultPath = "/etc/gz302/rgb.toml"

// Record is one persisted command. Kind selects which fields matter.
type Record struct {
	Kind      string `toml:"kind"` // color, brightness or animation
	Color     string `toml:"color,omitempty"`
	Color2    string `toml:"color2,omitempty"`
	Level     int    `toml:"level"`
	Animation string `toml:"animation,omitempty"`
	Speed     string `toml:"speed,omitempty"`
}

const (
	KindColor      = "color"
	KindBrightness = "brightness"
	KindAnimation  = "animation"
)

type fileConfig struct {
	Version int               `toml:"version"`
	Targets map[string]Record `toml:"targets"`
}

// Store is a TOML-backed settings file, one record per target.
type Store struct {
	path string
}

// NewStore returns a store at path (DefaultPath when empty).
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Save overwrites the target's record, keeping the other target's intact.
func (s *Store) Save(target lights.Target, rec Record) error {
	cfg, err := s.read()
	if err != nil {
		return err
	}
	cfg.Targets[string(target)] = rec

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Load returns the persisted record per target. A missing file is an empty
// result, not an error.
func (s *Store) Load() (map[lights.Target]Record, error) {
	cfg, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make(map[lights.Target]Record, len(cfg.Targets))
	for name, rec := range cfg.Targets {
		target, err := lights.ParseTarget(name)
		if err != nil {
			continue
		}
		out[target] = rec
	}
	return out, nil
}

func (s *Store) read() (*fileConfig, error) {
	cfg := &fileConfig{Version: 1, Targets: make(map[string]Record)}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	if cfg.Targets == nil {
		cfg.Targets = make(map[string]Record)
	}
	return cfg, nil
}
