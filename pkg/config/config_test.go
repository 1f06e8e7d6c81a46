package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "mistral-small-latest", cfg.MistralModel)
	assert.Equal(t, 60, cfg.LLMTimeoutSeconds)
	assert.Equal(t, 4000, cfg.MaxPromptChars)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROVIDER", "mistral")
	t.Setenv("MISTRAL_API_KEY", "secret")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("MAX_PROMPT_CHARS", "1000")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mistral", cfg.Provider)
	assert.Equal(t, "secret", cfg.MistralAPIKey)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 1000, cfg.MaxPromptChars)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "lots")
	cfg := Load()
	assert.Equal(t, 20, cfg.RateLimitMax)
}
