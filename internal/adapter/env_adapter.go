package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// EnvAdapter looks up environment variables.
type EnvAdapter interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvAdapter reads the process environment.
type OSEnvAdapter struct{}

// NewOSEnvAdapter returns an EnvAdapter backed by os.LookupEnv.
func NewOSEnvAdapter() *OSEnvAdapter {
	return &OSEnvAdapter{}
}

// LookupEnv implements EnvAdapter.
func (OSEnvAdapter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvAdapter is a fixed set of variables.
type MapEnvAdapter map[string]string

// LookupEnv implements EnvAdapter.
func (e MapEnvAdapter) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}

		slog.Debug("loaded env file", "path", path)
	}

	return nil
}
