package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// LLM provider selection and credentials
	Provider          string
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIBaseURL     string
	MistralAPIKey     string
	MistralModel      string
	MistralBaseURL    string
	LLMTimeoutSeconds int

	// Request limits
	MaxPromptChars int

	// Rate limiting
	RateLimitMax           int
	RateLimitWindowSeconds int

	// Optional infrastructure
	RedisURL    string
	DatabaseURL string
	CORSOrigins string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                   getEnv("PORT", "8080"),
		Provider:               getEnv("PROVIDER", "openai"),
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:          os.Getenv("OPENAI_BASE_URL"),
		MistralAPIKey:          os.Getenv("MISTRAL_API_KEY"),
		MistralModel:           getEnv("MISTRAL_MODEL", "mistral-small-latest"),
		MistralBaseURL:         os.Getenv("MISTRAL_BASE_URL"),
		LLMTimeoutSeconds:      getEnvInt("LLM_TIMEOUT_SECONDS", 60),
		MaxPromptChars:         getEnvInt("MAX_PROMPT_CHARS", 4000),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", 20),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RedisURL:               os.Getenv("REDIS_URL"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		CORSOrigins:            getEnv("CORS_ORIGINS", "*"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
