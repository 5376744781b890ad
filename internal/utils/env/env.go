package env

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AttemptReadLocalEnvironment loads the env file only for local development runs.
func AttemptReadLocalEnvironment(path string) error {
	if os.Getenv("APP_ENV") != "local" {
		return nil
	}
	return godotenv.Load(path)
}

func CanGet(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
