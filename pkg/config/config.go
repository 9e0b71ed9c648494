package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	DatabaseURL string

	AuthMode        string // "firebase" or "dev"
	FirebaseProject string
	JWTSecret       string
	JWTExpiry       int64

	GeminiAPIKey string
	GeminiModel  string

	ImageSearchCapacity      int
	ImageSearchRefillTokens  int
	ImageSearchRefillSeconds int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		AuthMode:        getEnv("AUTH_MODE", "dev"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:       getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		ImageSearchCapacity:      getEnvAsInt("IMAGE_SEARCH_CAPACITY", 10),
		ImageSearchRefillTokens:  getEnvAsInt("IMAGE_SEARCH_REFILL_TOKENS", 10),
		ImageSearchRefillSeconds: getEnvAsInt64("IMAGE_SEARCH_REFILL_SECONDS", 3600),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
