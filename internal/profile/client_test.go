package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "https://linkedin.com/in/jane", r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary": "Engineer", "experiences": []}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "secret")
	require.NoError(t, err)

	raw, err := client.Lookup(context.Background(), "https://linkedin.com/in/jane")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", raw["summary"])
}

func TestLookup_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "bad-key")
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "https://linkedin.com/in/jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestLookup_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"summary": `))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "secret")
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "https://linkedin.com/in/jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed profile response")
}

func TestLookup_SchemaViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"experiences": "not-a-list"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "secret")
	require.NoError(t, err)

	_, err = client.Lookup(context.Background(), "https://linkedin.com/in/jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed profile response")
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient("", "key")
	assert.Error(t, err)

	_, err = NewClient("https://example.com", "")
	assert.Error(t, err)
}
