package llm

import (
	"fmt"
	"strings"

	"promptenhancer/pkg/llm/mistral"
	"promptenhancer/pkg/llm/openai"
)

// Provider identifies a supported LLM vendor.
type Provider string

const (
	ProviderOpenAI  Provider = "openai"
	ProviderMistral Provider = "mistral"
)

// ProviderConfig holds what is needed to construct a concrete client.
type ProviderConfig struct {
	Provider Provider

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	MistralAPIKey  string
	MistralModel   string
	MistralBaseURL string
}

// ParseProvider converts a config string to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "openai", "gpt":
		return ProviderOpenAI, nil
	case "mistral", "mistralai":
		return ProviderMistral, nil
	default:
		return "", fmt.Errorf("unknown provider: %q (expected openai or mistral)", s)
	}
}

// New creates a ChatModel for the configured provider.
func New(cfg ProviderConfig) (ChatModel, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for provider %s", cfg.Provider)
		}
		return openai.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	case ProviderMistral:
		if cfg.MistralAPIKey == "" {
			return nil, fmt.Errorf("MISTRAL_API_KEY is required for provider %s", cfg.Provider)
		}
		return mistral.New(cfg.MistralAPIKey, cfg.MistralBaseURL, cfg.MistralModel), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", cfg.Provider)
	}
}
