package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"stay calm"},"done":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "mistral")
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "stay calm", text)
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "mistral")
	_, err := c.Generate(context.Background(), "hello")
	require.Error(t, err)
}

func TestGenerateUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "mistral")
	_, err := c.Generate(context.Background(), "hello")
	require.Error(t, err)
}
