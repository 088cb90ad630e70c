package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolate points the default config lookup and environment at nothing.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "PLUGIN_SCRIPTS", "PLUGIN_TIMEOUT"} {
		t.Setenv(EnvPrefix+k, "")
		os.Unsetenv(EnvPrefix + k)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 5*time.Second, cfg.Plugins.Timeout)
	assert.Empty(t, cfg.Plugins.Scripts)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNoFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.toml", `
[logging]
level = "DEBUG"
format = "json"

[plugins]
scripts = ["a.lua", "b.lua"]
timeout = "250ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"a.lua", "b.lua"}, cfg.Plugins.Scripts)
	assert.Equal(t, 250*time.Millisecond, cfg.Plugins.Timeout)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadYAML(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.yml", `
logging:
  level: warn
plugins:
  scripts:
    - init.lua
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "unset keys keep their defaults")
	assert.Equal(t, []string{"init.lua"}, cfg.Plugins.Scripts)
}

func TestLoadEmptyYAML(t *testing.T) {
	isolate(t)
	cfg, err := Load(writeFile(t, "config.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadDefaultLocation(t *testing.T) {
	isolate(t)
	paths := DefaultPaths()
	require.NotEmpty(t, paths)
	require.NoError(t, os.MkdirAll(filepath.Dir(paths[0]), 0o700))
	require.NoError(t, os.WriteFile(paths[0], []byte("[logging]\nlevel = \"error\"\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, paths[0], cfg.Source)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "config.toml", "[logging]\nlevel = \"debug\"\n")
	t.Setenv("JUSTIFY_LOG_LEVEL", "error")
	t.Setenv("JUSTIFY_PLUGIN_SCRIPTS", "one.lua, two.lua,")
	t.Setenv("JUSTIFY_PLUGIN_TIMEOUT", "1s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, []string{"one.lua", "two.lua"}, cfg.Plugins.Scripts)
	assert.Equal(t, time.Second, cfg.Plugins.Timeout)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		file    string
		content string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "unknown toml key",
			file:    "config.toml",
			content: "[logging]\nlevle = \"debug\"\n",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				assert.True(t, errors.As(err, &pe), "got %T: %v", err, err)
			},
		},
		{
			name:    "malformed toml",
			file:    "config.toml",
			content: "[logging\nlevel = 1",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				require.True(t, errors.As(err, &pe))
				assert.Greater(t, pe.Line, 0)
				assert.Contains(t, err.Error(), "parse error in")
			},
		},
		{
			name:    "unknown yaml key",
			file:    "config.yaml",
			content: "plugin:\n  scripts: []\n",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				assert.True(t, errors.As(err, &pe))
			},
		},
		{
			name:    "bad level",
			file:    "config.toml",
			content: "[logging]\nlevel = \"loud\"\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrValidationFailed)
			},
		},
		{
			name:    "bad format",
			file:    "config.toml",
			content: "[logging]\nformat = \"xml\"\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrValidationFailed)
			},
		},
		{
			name:    "bad timeout",
			file:    "config.yaml",
			content: "plugins:\n  timeout: soon\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrValidationFailed)
			},
		},
		{
			name:    "unsupported extension",
			file:    "config.ini",
			content: "level=debug",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err) || errors.Is(err, os.ErrNotExist))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[plugins]\ntimeout = \"3s\"\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Plugins.Timeout)
	assert.Equal(t, "3s", *f.Plugins.Timeout)

	_, err = LoadFile(filepath.Join(t.TempDir(), "config.ini"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, "init.lua"), expandHome("~/init.lua"))
	assert.Equal(t, "/abs/init.lua", expandHome("/abs/init.lua"))
}
