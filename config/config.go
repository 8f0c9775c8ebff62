package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"soluna/common"
)

// Config is the full configuration of the analyzer, loaded from a
// `soluna.toml` file.  Every field has a usable default so the file is
// optional.
type Config struct {
	LogLevel string       `toml:"log_level"`
	Server   ServerConfig `toml:"server"`
}

// ServerConfig holds the transport settings
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// AllowedOrigins restricts websocket upgrades; empty allows any origin
	AllowedOrigins []string `toml:"allowed_origins"`

	// MaxSourceLen caps the size of a submitted source text in bytes
	MaxSourceLen int `toml:"max_source_len"`
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		LogLevel: "verbose",
		Server: ServerConfig{
			Host:         "localhost",
			Port:         8080,
			MaxSourceLen: 1 << 20,
		},
	}
}

// Load reads the configuration file from the given directory, falling back
// to defaults for the file and for any field it omits
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, common.ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("unable to read config file at `%s`: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file at `%s`: %w", path, err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	return cfg, nil
}
