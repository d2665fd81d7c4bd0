package dynschema

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg     Config
	cfgOnce sync.Once
	cfgErr  error
)

// Config carries the environment-driven defaults for pools and contexts,
// letting deployments tune validation resource bounds without code changes.
type Config struct {
	MaxErrors  int `env:"DYNSCHEMA_MAX_ERRORS" envDefault:"20"`
	MaxNesting int `env:"DYNSCHEMA_MAX_NESTING" envDefault:"10"`
	PoolSize   int `env:"DYNSCHEMA_POOL_SIZE" envDefault:"32"`
}

// LoadConfig parses the DYNSCHEMA_* environment variables once per process
// and returns the cached result on subsequent calls.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		var c Config
		if err := env.Parse(&c); err != nil {
			cfgErr = err
			return
		}
		cfg = c
	})
	if cfgErr != nil {
		return Config{}, cfgErr
	}
	return cfg, nil
}

// NewPoolFromEnv builds a Pool sized and bounded by the environment
// configuration.
func NewPoolFromEnv() (*Pool, error) {
	c, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewPool(PoolConfig{
		Size:       c.PoolSize,
		MaxErrors:  c.MaxErrors,
		MaxNesting: c.MaxNesting,
	}), nil
}
