package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_GenerateText(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k-123", r.Header.Get("x-goog-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A warm lamp."},{"text":"ignored"}]}},{"content":{"parts":[]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("k-123", "gemini-test", srv.URL+"/", time.Second)
	texts, err := c.GenerateText(context.Background(), "describe lamp")
	require.NoError(t, err)
	assert.Equal(t, []string{"A warm lamp."}, texts)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "describe lamp", got.Contents[0].Parts[0].Text)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m", srv.URL, time.Second)
	texts, err := c.GenerateText(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, texts)
}

func TestGeminiClient_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m", srv.URL, time.Second)
	_, err := c.GenerateText(context.Background(), "x")
	assert.EqualError(t, err, "gemini: API key not valid")
}

func TestGeminiClient_UpstreamErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewGeminiClient("k", "m", srv.URL, time.Second)
	_, err := c.GenerateText(context.Background(), "x")
	assert.EqualError(t, err, "gemini: status 503")
}

func TestGeminiClient_MissingKey(t *testing.T) {
	c := NewGeminiClient(" ", "m", "http://unused", time.Second)
	_, err := c.GenerateText(context.Background(), "x")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
