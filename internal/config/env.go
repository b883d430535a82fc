package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var envFileNames = []string{".env", ".env.local"}

// loadEnvFile loads the first .env/.env.local found in dir. godotenv.Load never
// overrides variables already present in the process environment.
func loadEnvFile(dir string) error {
	for _, name := range envFileNames {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return err
		}
		slog.Debug("Loaded environment variables", slog.String("file", envPath))
		return nil
	}
	return errors.New("no .env file found")
}
