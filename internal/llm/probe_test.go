package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeboxhq/codebox/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	status := NewClient(nil).Probe(context.Background(), testBackend(server.URL, model.ProviderOpenAI))
	assert.True(t, status.Reachable)
	assert.Empty(t, status.Reason)
}

func TestProbeAnthropicHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	status := NewClient(nil).Probe(context.Background(), testBackend(server.URL, model.ProviderAnthropic))
	assert.True(t, status.Reachable)
}

func TestProbeUnreachable(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		status := NewClient(nil).Probe(context.Background(), testBackend(server.URL, model.ProviderOpenAI))
		require.False(t, status.Reachable)
		assert.Equal(t, "HTTP 401", status.Reason)
		assert.NotContains(t, status.Reason, "secret-key")
	})

	t.Run("transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close()

		status := NewClient(nil).Probe(context.Background(), testBackend(server.URL, model.ProviderOpenAI))
		require.False(t, status.Reachable)
		assert.NotEmpty(t, status.Reason)
		assert.NotContains(t, status.Reason, "secret-key")
	})

	t.Run("missing api key", func(t *testing.T) {
		backend := testBackend("https://api.openai.com/v1", model.ProviderOpenAI)
		backend.APIKey = ""

		status := NewClient(nil).Probe(context.Background(), backend)
		require.False(t, status.Reachable)
		assert.Equal(t, "API key not configured", status.Reason)
	})

	t.Run("missing base url", func(t *testing.T) {
		backend := testBackend("", model.ProviderOpenAI)

		status := NewClient(nil).Probe(context.Background(), backend)
		require.False(t, status.Reachable)
		assert.Equal(t, "base URL not configured", status.Reason)
	})
}
