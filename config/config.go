package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the client. Precedence: environment
// variables over the optional YAML config file over built-in defaults.
type Config struct {
	Environment string        `ignored:"true"`
	APIURL      string        `envconfig:"API_URL"`
	StateDir    string        `envconfig:"STATE_DIR"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
}

// fileConfig is the YAML shape of the optional config file. The timeout is
// a Go duration string ("30s", "2m").
type fileConfig struct {
	APIURL      string `yaml:"api_url"`
	StateDir    string `yaml:"state_dir"`
	HTTPTimeout string `yaml:"http_timeout"`
}

// Load loads configuration from the environment and, when present, the
// YAML config file. A .env file is honored outside production; in
// production only system environment variables are consulted.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{Environment: env}
	if err := loadFile(cfg); err != nil {
		return nil, err
	}
	if err := envconfig.Process("EVENTADMIN", cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = "http://localhost:8080"
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".eventadmin")
	}

	return cfg, nil
}

// loadFile merges the YAML config file into cfg when one exists. The path
// comes from EVENTADMIN_CONFIG_FILE, falling back to ~/.eventadmin.yaml. A
// missing file is not an error.
func loadFile(cfg *Config) error {
	path := os.Getenv("EVENTADMIN_CONFIG_FILE")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".eventadmin.yaml")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.APIURL = fc.APIURL
	cfg.StateDir = fc.StateDir
	if fc.HTTPTimeout != "" {
		d, err := time.ParseDuration(fc.HTTPTimeout)
		if err != nil {
			return fmt.Errorf("parse http_timeout in %s: %w", path, err)
		}
		cfg.HTTPTimeout = d
	}
	return nil
}
