package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appdesigner/internal/common/config"
	"appdesigner/internal/models"
)

func chatCompletionResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "llama-3.1-70b-versatile",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func TestOpenAICompatProviderExtract(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionResponse(validResponse))
	}))
	defer srv.Close()

	p := NewOpenAICompatProvider("groq", config.ProviderConfig{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "llama-3.1-70b-versatile",
		MaxTokens:   4000,
		Temperature: 0.7,
		Timeout:     5000,
	})

	req, err := p.Extract(context.Background(), "an online store", models.Preferences{Style: "modern"})
	require.NoError(t, err)

	assert.Equal(t, "groq", p.Name())
	assert.Equal(t, "e-commerce", req.AppType)
	assert.Contains(t, gotPath, "chat/completions")
}

func TestOpenAICompatProviderRejectsNonJSONContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletionResponse("sorry, I cannot do that"))
	}))
	defer srv.Close()

	p := NewOpenAICompatProvider("groq", config.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "llama-3.1-70b-versatile",
		Timeout: 5000,
	})

	_, err := p.Extract(context.Background(), "an online store", models.Preferences{})
	assert.Error(t, err)
}

func TestOpenAICompatProviderSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid model"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewOpenAICompatProvider("groq", config.ProviderConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "llama-3.1-70b-versatile",
		Timeout: 5000,
	})

	_, err := p.Extract(context.Background(), "an online store", models.Preferences{})
	assert.Error(t, err)
}
