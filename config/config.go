package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultMaxDatabases        = 3
	DefaultMaxScriptURLEdits   = 3
	DefaultAdminTokenExpiryMin = 60
	DefaultUpstreamTimeoutSec  = 30
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	// AdminScriptURL points at the directory script. It may legitimately be
	// empty at startup: the absence is a per-request configuration error,
	// reported by the repository, not a reason to refuse to boot.
	AdminScriptURL string

	AdminPasswordHash   string
	AdminTokenSecret    string
	AdminTokenExpiryMin int

	MaxDatabases       int
	MaxScriptURLEdits  int
	UpstreamTimeoutSec int
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Optional per-environment overlay; deployments normally use plain env vars.
	switch env {
	case "production":
		_ = godotenv.Load("config/.env.prod")
	default:
		_ = godotenv.Load("config/.env.dev")
	}

	return &Config{
		Env:                 env,
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		AdminScriptURL:      os.Getenv("ADMIN_SCRIPT_URL"),
		AdminPasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTokenSecret:    os.Getenv("ADMIN_TOKEN_SECRET"),
		AdminTokenExpiryMin: getEnvAsInt("ADMIN_TOKEN_EXPIRY", DefaultAdminTokenExpiryMin),
		MaxDatabases:        getEnvAsInt("MAX_DATABASES", DefaultMaxDatabases),
		MaxScriptURLEdits:   getEnvAsInt("MAX_SCRIPT_URL_EDITS", DefaultMaxScriptURLEdits),
		UpstreamTimeoutSec:  getEnvAsInt("UPSTREAM_TIMEOUT", DefaultUpstreamTimeoutSec),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
