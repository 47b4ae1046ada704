package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebPage_ExtractsVisibleText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><title>t</title></head><body>
			<script>nope()</script>
			<h1>Backend Engineer</h1><p>at Acme Corp</p>
		</body></html>`))
	}))
	defer srv.Close()

	result := WebPage(context.Background(), srv.URL, false)

	assert.Empty(t, result.Warning)
	assert.Contains(t, result.Text, "Backend Engineer")
	assert.Contains(t, result.Text, "at Acme Corp")
	assert.NotContains(t, result.Text, "nope()")
}

func TestWebPage_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	result := WebPage(context.Background(), srv.URL, false)

	assert.Empty(t, result.Text)
	assert.Contains(t, result.Warning, "403")
}

func TestWebPage_UnreachableHost(t *testing.T) {
	result := WebPage(context.Background(), "http://127.0.0.1:1/nothing", false)

	assert.Empty(t, result.Text)
	assert.NotEmpty(t, result.Warning)
}
