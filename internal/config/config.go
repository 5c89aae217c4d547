// Package config loads the shared run configuration. Settings are read
// once in main and passed down explicitly; nothing in the program mutates
// them afterwards.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so values like "30s" decode from TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements TOML text decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Config is the full run configuration.
type Config struct {
	Rules          string         `toml:"rules"`
	CredentialsDir string         `toml:"credentials_dir"`
	Gmail          GmailConfig    `toml:"gmail"`
	Database       DatabaseConfig `toml:"database"`
}

// GmailConfig tunes remote-call behavior.
type GmailConfig struct {
	PageSize    int      `toml:"page_size"`
	RPS         int      `toml:"rps"`
	CallTimeout Duration `toml:"call_timeout"`
}

// DatabaseConfig holds the Postgres coordinates for the record store.
type DatabaseConfig struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	TLS      bool   `toml:"tls"`
	Table    string `toml:"table"`
}

// Default returns the configuration used when the file omits a setting.
func Default() Config {
	return Config{
		Rules:          "email_rules.json",
		CredentialsDir: os.ExpandEnv("$HOME/.gmailctl"),
		Gmail: GmailConfig{
			PageSize:    500,
			RPS:         4,
			CallTimeout: Duration{30 * time.Second},
		},
		Database: DatabaseConfig{
			Host: "localhost",
			Port: "5432",
		},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return Config{}, fmt.Errorf("config %s: database user and name are required", path)
	}
	return cfg, nil
}
