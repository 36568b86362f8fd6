package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads path over the defaults, applies the environment
// overlay and validates the result.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(b)
}

// LoadConfigOptional is LoadConfig that falls back to defaults when path
// does not exist.
func LoadConfigOptional(path string) (Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Parse(nil)
	}
	return cfg, err
}

// Parse decodes a TOML manifest.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
