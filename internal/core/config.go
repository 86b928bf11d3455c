package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	rcFileName = ".libsetuprc.yml"

	// DefaultLibrary is installed when the invoker names no libraries.
	DefaultLibrary = "topcoder-react-utils"
)

// Config is the optional per-project rc file for this tool. It never
// affects the host's own package.json; it only tunes how the tool runs.
type Config struct {
	DefaultLibrary string   `yaml:"defaultLibrary,omitempty"`
	NPM            []string `yaml:"npm,omitempty"` // installer command override, binary first
}

// LoadConfig reads .libsetuprc.yml from dir. A missing file yields the
// built-in defaults; malformed YAML is an error.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, rcFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.DefaultLibrary == "" {
		cfg.DefaultLibrary = DefaultLibrary
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{DefaultLibrary: DefaultLibrary}
}
