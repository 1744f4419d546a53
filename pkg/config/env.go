package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment. Later
// files take precedence over earlier ones, and loaded values override
// variables that are already set. Calling LoadEnv without arguments loads
// the default .env file from the current working directory.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics if any of the files cannot be
// loaded.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load environment files: %v", err))
	}
}
