package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	APITimeout     time.Duration `yaml:"timeout"`
	DatabasePath   string        `yaml:"database_path"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// LoadConfig builds the configuration from defaults, environment variables
// and, when path is non-empty, a YAML file. A .env file in the working
// directory is loaded first if present.
func LoadConfig(path string) (*Config, error) {
	// optional; absence is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           getEnv("EMPDIR_ADDR", ":8080"),
		APITimeout:     15 * time.Second,
		DatabasePath:   getEnv("EMPDIR_DATABASE_PATH", "employees.db"),
		AllowedOrigins: []string{"*"},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks that the configuration can run a server.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
