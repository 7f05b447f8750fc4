package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/actionctl/internal/logging"
)

// EnvConfigPath names an explicit config file; when unset, DefaultPath is
// probed and a missing file simply yields defaults.
const EnvConfigPath = "ACTIONCTL_CONFIG"

const defaultFileName = ".actionctl.toml"

// ToolConfig is the on-disk configuration surface.
type ToolConfig struct {
	Log LogConfig `toml:"log"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
			NoColor:   !logging.StderrIsTerminal(),
		},
	}
}

type fileConfig struct {
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
	} `toml:"log"`
}

// Load reads path on top of the defaults; only keys the file defines
// override them.
func Load(path string) (ToolConfig, error) {
	cfg := DefaultToolConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return ToolConfig{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}
	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if err := Validate(cfg); err != nil {
		return ToolConfig{}, err
	}
	return cfg, nil
}

// Resolve loads the tool config from the explicit path, the EnvConfigPath
// variable, or the default probe location, in that order. The returned
// path is empty when the defaults were used without a file. A missing file
// is only an error when it was named explicitly.
func Resolve(explicit string) (ToolConfig, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	if fromEnv := strings.TrimSpace(os.Getenv(EnvConfigPath)); fromEnv != "" {
		cfg, err := Load(fromEnv)
		return cfg, fromEnv, err
	}
	path := DefaultPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultToolConfig(), "", nil
		}
		return ToolConfig{}, "", fmt.Errorf("config: stat %s: %w", path, err)
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// DefaultPath is the probe location in the working directory.
func DefaultPath() string {
	return defaultFileName
}

func Validate(cfg ToolConfig) error {
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("config: unknown log level %q", cfg.Log.Level)
	}
	return nil
}

// ToLogging maps the [log] section onto the runtime logger config.
func (c ToolConfig) ToLogging() logging.Config {
	lvl, _ := logging.ParseLevel(c.Log.Level)
	return logging.Config{
		Level:     lvl,
		Timestamp: c.Log.Timestamp,
		NoColor:   c.Log.NoColor,
	}
}
