package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nwchen/chathub/internal/llm"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p := NewProvider("test-key", "gpt-3.5-turbo", 80, 5*time.Second)
	p.baseURL = server.URL
	return p
}

func TestProvider_Complete(t *testing.T) {
	t.Run("returns the first choice", func(t *testing.T) {
		var got chatRequest
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "first"}},
					{"message": map[string]any{"content": "second"}},
				},
				"usage": map[string]any{"total_tokens": 42},
			})
		})

		reply, err := p.Complete(context.Background(), []string{"a", "b"}, "")
		assert.NoError(t, err)
		assert.Equal(t, "first", reply.Content)
		assert.Equal(t, 42, reply.TokensUsed)

		assert.Equal(t, "gpt-3.5-turbo", got.Model)
		assert.Equal(t, 80, got.MaxTokens)
		assert.Equal(t, llm.BuildMessages([]string{"a", "b"}), got.Messages)
	})

	t.Run("empty transcript yields no result and no error", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected for an empty transcript")
		})

		reply, err := p.Complete(context.Background(), nil, "")
		assert.NoError(t, err)
		assert.Nil(t, reply)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := p.Complete(context.Background(), []string{"a"}, "")
		assert.Error(t, err)
	})

	t.Run("no choices is an error", func(t *testing.T) {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		})

		_, err := p.Complete(context.Background(), []string{"a"}, "")
		assert.Error(t, err)
	})
}
