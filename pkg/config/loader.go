package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into a fresh configuration struct of
// type T based on its field tags.
//
// Before the first parse in the process lifetime it attempts to load the
// default .env file from the current working directory. A missing .env file
// is not an error. Every call re-reads the process environment, so changes
// made between calls are picked up.
//
// Example:
//
//	type ServerConfig struct {
//		Host string `env:"SERVER_HOST" envDefault:"localhost"`
//		Port int    `env:"SERVER_PORT" envDefault:"8080"`
//	}
//
//	cfg, err := config.Load[ServerConfig]()
//	if err != nil {
//		// Handle error
//	}
func Load[T any]() (T, error) {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	cfg := config.MustLoad[ServerConfig]()
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
