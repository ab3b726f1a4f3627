// Package config loads the analyzer configuration from defaults, an optional
// YAML file, environment variables and a .env file.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	envOnce sync.Once
	envFile string
	envErr  error
)

// LoadEnv loads the first .env file found in the current or parent directory.
// It runs once per process and returns the file used, or "" when none exists.
// Variables already set in the environment are never overwritten.
func LoadEnv() (string, error) {
	envOnce.Do(func() {
		envFile, envErr = loadEnvFrom(".", "..")
	})
	return envFile, envErr
}

func loadEnvFrom(dirs ...string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
