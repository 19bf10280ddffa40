package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	APIBaseURL    string
	SessionSecret string
	SessionStore  string // "cookie" or "redis"
	RedisHost     string
	RedisPort     string
	GinMode       string
	LogLevel      string
	PageSize      int
}

// Load reads configuration from the environment, after loading an optional
// .env file. Missing keys fall back to development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":3000"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080/api"),
		SessionSecret: getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		SessionStore:  getEnv("SESSION_STORE", "cookie"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PageSize:      getEnvInt("PAGE_SIZE", 10),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
