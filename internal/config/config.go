package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "JUSTIFY_"

// Config is the resolved application configuration.
type Config struct {
	Logging LoggingConfig
	Plugins PluginsConfig

	// Source is the file the configuration was read from, if any.
	Source string
}

// LoggingConfig configures the application logger.
type LoggingConfig struct {
	// Level is a logrus level name: trace, debug, info, warn, error.
	Level string
	// Format is "text" or "json".
	Format string
}

// PluginsConfig configures Lua plugin scripts.
type PluginsConfig struct {
	// Scripts are run, in order, when the application starts.
	Scripts []string
	// Timeout bounds each script execution.
	Timeout time.Duration
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Plugins: PluginsConfig{
			Timeout: 5 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path looks for a file in the default locations; a
// missing default file is not an error, a missing explicit one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findDefaultFile()
	}
	if path != "" {
		f, err := LoadFile(path)
		switch {
		case err == nil:
			if err := cfg.apply(f); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			cfg.Source = path
		case os.IsNotExist(err) && !explicit:
		default:
			return nil, err
		}
	}

	if err := cfg.apply(LoadEnv(os.LookupEnv)); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks setting values.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrValidationFailed, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format must be text or json, got %q", ErrValidationFailed, c.Logging.Format)
	}
	if c.Plugins.Timeout < 0 {
		return fmt.Errorf("%w: plugins.timeout must not be negative", ErrValidationFailed)
	}
	return nil
}

// apply overlays the set fields of f onto c.
func (c *Config) apply(f *File) error {
	if f == nil {
		return nil
	}
	if f.Logging.Level != nil {
		c.Logging.Level = strings.ToLower(*f.Logging.Level)
	}
	if f.Logging.Format != nil {
		c.Logging.Format = strings.ToLower(*f.Logging.Format)
	}
	if f.Plugins.Scripts != nil {
		c.Plugins.Scripts = make([]string, len(f.Plugins.Scripts))
		for i, s := range f.Plugins.Scripts {
			c.Plugins.Scripts[i] = expandHome(s)
		}
	}
	if f.Plugins.Timeout != nil {
		d, err := time.ParseDuration(*f.Plugins.Timeout)
		if err != nil {
			return fmt.Errorf("%w: plugins.timeout: %v", ErrValidationFailed, err)
		}
		c.Plugins.Timeout = d
	}
	return nil
}

// DefaultPaths returns the locations searched when no file is given.
func DefaultPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	base := filepath.Join(dir, "justify")
	return []string{
		filepath.Join(base, "config.toml"),
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
	}
}

func findDefaultFile() string {
	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
