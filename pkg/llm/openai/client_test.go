package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		msgs := req["messages"].([]any)
		require.Len(t, msgs, 2)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "improved"}},
			},
		})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	out, err := c.Ask(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "improved", out)
}

func TestAsk_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"message": "overloaded"}})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	_, err := c.Ask(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai http 500")
}

func TestAsk_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	_, err := c.Ask(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestAsk_MissingKey(t *testing.T) {
	c := New("", "", "")
	_, err := c.Ask(context.Background(), "system", "user")
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	c := New("k", "", "")
	assert.Equal(t, "https://api.openai.com/v1", c.BaseURL)
	assert.Equal(t, "gpt-4o-mini", c.ModelName())
}
