package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	cases := map[string]Provider{
		"openai":    ProviderOpenAI,
		"OpenAI":    ProviderOpenAI,
		"gpt":       ProviderOpenAI,
		"mistral":   ProviderMistral,
		"mistralai": ProviderMistral,
		" mistral ": ProviderMistral,
	}
	for in, want := range cases {
		got, err := ParseProvider(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseProvider_Unknown(t *testing.T) {
	_, err := ParseProvider("anthropic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestNew_OpenAI(t *testing.T) {
	m, err := New(ProviderConfig{Provider: ProviderOpenAI, OpenAIAPIKey: "k", OpenAIModel: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", m.ModelName())
}

func TestNew_Mistral(t *testing.T) {
	m, err := New(ProviderConfig{Provider: ProviderMistral, MistralAPIKey: "k", MistralModel: "mistral-large-latest"})
	require.NoError(t, err)
	assert.Equal(t, "mistral-large-latest", m.ModelName())
}

func TestNew_MissingKey(t *testing.T) {
	_, err := New(ProviderConfig{Provider: ProviderOpenAI})
	require.Error(t, err)
	_, err = New(ProviderConfig{Provider: ProviderMistral})
	require.Error(t, err)
}
