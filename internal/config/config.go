// ABOUTME: Application config loaded from config.toml
// ABOUTME: Applies defaults and the WORDBOOK_DATA_DIR environment override
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// DataDirEnv overrides data_dir from the config file.
const DataDirEnv = "WORDBOOK_DATA_DIR"

// Config holds settings read from config.toml. Keys missing from the file
// keep the values from Default.
type Config struct {
	DataDir   string `toml:"data_dir"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	CharmHost string `toml:"charm_host"`
	AutoSync  bool   `toml:"auto_sync"`
}

// Default returns the config used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	return LoadFile(DefaultConfigPath())
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if dir := os.Getenv(DataDirEnv); dir != "" {
		cfg.DataDir = dir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}

	return cfg, nil
}
