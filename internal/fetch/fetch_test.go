package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
}

func TestURL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	assert.Error(t, err)
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	_, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestExtractVisibleText_DiscardsNoiseElements(t *testing.T) {
	html := `<html><head><title>Ignored</title><meta name="x" content="y"></head>
	<body>
		<header>Site Nav</header>
		<script>var hidden = 1;</script>
		<style>.x { color: red; }</style>
		<noscript>enable js</noscript>
		<input value="field">
		<p>Backend Engineer</p>
		<div>at Acme Corp</div>
	</body></html>`

	text, err := ExtractVisibleText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "at Acme Corp")
	assert.NotContains(t, text, "hidden")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "enable js")
	assert.NotContains(t, text, "Site Nav")
	assert.NotContains(t, text, "Ignored")
}

func TestExtractVisibleText_JoinsWithSingleSpaces(t *testing.T) {
	html := "<html><body><p>one</p>\n\n<p>two</p>  <span>three</span></body></html>"

	text, err := ExtractVisibleText(html)
	require.NoError(t, err)
	assert.Equal(t, "one two three", text)
}

func TestExtractVisibleText_ExtraNoiseSelectors(t *testing.T) {
	html := `<html><body><div class="apply">Apply now</div><p>Job text</p></body></html>`

	text, err := ExtractVisibleText(html, ".apply")
	require.NoError(t, err)
	assert.Equal(t, "Job text", text)
}

func TestDetectPlatform(t *testing.T) {
	assert.Equal(t, PlatformGreenhouse, DetectPlatform("https://boards.greenhouse.io/acme/jobs/123"))
	assert.Equal(t, PlatformLever, DetectPlatform("https://jobs.lever.co/acme/abc"))
	assert.Equal(t, PlatformWorkday, DetectPlatform("https://acme.myworkdayjobs.com/en-US/jobs"))
	assert.Equal(t, PlatformUnknown, DetectPlatform("https://example.com/careers"))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
