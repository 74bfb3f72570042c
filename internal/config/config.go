package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string
	RedisURL           string
	FrontendURL        string  // Allowed CORS origin for the dev frontend
	JWTSecret          string  // Secret key for JWT token signing
	JWTTTL             int     // JWT token expiration time in hours
	OpenAIAPIKey       string  // API key for the completion service
	OpenAIBaseURL      string  // Completion service base URL
	OpenAIModel        string  // Model identifier used for all completions
	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int     // Burst size for auth endpoints
	RateLimitAIRPS     float64 // Rate limit for AI generation endpoints (strictest)
	RateLimitAIBurst   int     // Burst size for AI generation endpoints
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 24),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),   // 10 requests per second for general API
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),   // Allow bursts of 20
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5), // 5 requests per second for auth (stricter)
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitAIRPS:     getEnvFloat("RATE_LIMIT_AI_RPS", 1), // AI calls are slow and billed per request
		RateLimitAIBurst:   getEnvInt("RATE_LIMIT_AI_BURST", 3),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
