package config

import (
	"errors"
	"path/filepath"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the first readable .env file in dir.
// Variables already present in the process environment are not overwritten.
func loadEnvFiles(dir string) error {
	for _, name := range envFiles {
		if err := godotenv.Load(filepath.Join(dir, name)); err == nil {
			return nil
		}
	}
	return errors.New("no .env file found")
}
