// Package config loads the server and client configuration from a YAML file
// overlaid with SKILLSWAP_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AvatarSize is the pixel size requested from the avatar service.
const AvatarSize = 80

type DBConfig struct {
	User string `koanf:"user"`
	Pass string `koanf:"pass"`
	Host string `koanf:"host"`
	Name string `koanf:"name"`
}

// DSN renders the go-sql-driver connection string. parseTime is required
// for upper/db to scan the created_at columns.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true", d.User, d.Pass, d.Host, d.Name)
}

type ClientConfig struct {
	BaseURL string `koanf:"base_url"`
	// SessionFile holds the persisted logged-in user.
	SessionFile string `koanf:"session_file"`
	// TimeoutSeconds bounds every request the client makes.
	TimeoutSeconds int `koanf:"timeout_seconds"`
	// LookupConcurrency caps the name-resolution fan-out per feed load.
	LookupConcurrency int `koanf:"lookup_concurrency"`
}

type Config struct {
	Port      string       `koanf:"port"`
	GinMode   string       `koanf:"gin_mode"`
	FEOrigins []string     `koanf:"fe_origins"`
	DB        DBConfig     `koanf:"db"`
	Client    ClientConfig `koanf:"client"`
}

func DefaultConfig() *Config {
	return &Config{
		Port:      "8080",
		FEOrigins: []string{"http://localhost:3000"},
		DB: DBConfig{
			User: "skillswap",
			Host: "127.0.0.1:3306",
			Name: "skillswap",
		},
		Client: ClientConfig{
			BaseURL:           "http://localhost:8080",
			SessionFile:       defaultSessionFile(),
			TimeoutSeconds:    30,
			LookupConcurrency: 8,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SKILLSWAP_DB_HOST -> db.host, etc.).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Double underscore separates nesting levels so keys like
	// client.session_file stay addressable: SKILLSWAP_CLIENT__SESSION_FILE.
	if err := k.Load(env.Provider("SKILLSWAP_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SKILLSWAP_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields the server cannot run without.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if c.DB.Host == "" || c.DB.Name == "" {
		return fmt.Errorf("db.host and db.name are required")
	}
	if c.Client.LookupConcurrency < 1 {
		return fmt.Errorf("client.lookup_concurrency must be positive")
	}
	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skillswap-session.json"
	}
	return home + "/.skillswap-session.json"
}
