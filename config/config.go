package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs from the environment. It is
// built once in main and passed to constructors; nothing reads the
// environment after startup.
type Config struct {
	Port         string
	DatabaseURL  string // postgres DSN; when empty the sqlite file is used
	DatabasePath string
	JWTSecret    []byte
	AllowOrigins []string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	godotenv.Load()

	cfg := Config{
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabasePath: getenv("DATABASE_PATH", "c_gardens.db"),
		JWTSecret:    []byte(getenv("JWT_SECRET", "change-me-in-production")),
		AllowOrigins: strings.Split(getenv("ALLOW_ORIGINS", "http://localhost:3000"), ","),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
