package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g. TODOS_BASE_URL.
const Prefix = "todos"

type Config struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://jsonplaceholder.typicode.com"`
	Limit   int           `envconfig:"LIMIT" default:"10"` // 0 fetches every todo
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
	Token   string        `envconfig:"TOKEN"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`

	Theme          string `envconfig:"THEME" default:"classic"`
	RollbackToggle bool   `envconfig:"ROLLBACK_TOGGLE" default:"true"`
}

// Load reads the optional env files into the environment and then processes
// the TODOS_ variables. Files that do not exist are skipped.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	if cfg.Limit < 0 {
		return nil, fmt.Errorf("TODOS_LIMIT must be >= 0, got %d", cfg.Limit)
	}
	return &cfg, nil
}
