package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file into the process environment when one exists.
// Variables already set win over the file.
func LoadEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetStoreTimeout bounds each store call. Zero leaves statements to run to
// completion.
func GetStoreTimeout() time.Duration {
	v := os.Getenv("STORE_TIMEOUT")
	if v == "" {
		return 0
	}

	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		GetLogrusInstance().Warnf("STORE_TIMEOUT %q is not a valid duration, store calls will not time out", v)
		return 0
	}
	return d
}
