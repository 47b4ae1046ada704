package extract

import (
	"context"
	"fmt"

	"github.com/jonathan/coverletter-agent/internal/fetch"
)

// WebPage fetches a page and extracts its visible text. Fetch failures and
// non-success statuses produce an empty Result with a warning rather than an
// error, so a bad job posting URL degrades the letter instead of failing the
// request.
//
// When useBrowser is set and the plain HTTP fetch yields too little text,
// the page is re-rendered in a headless browser before extraction.
func WebPage(ctx context.Context, urlStr string, useBrowser bool) Result {
	platform := fetch.DetectPlatform(urlStr)
	noise := fetch.PlatformNoiseSelectors(platform)

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		if result != nil {
			return Result{Warning: fmt.Sprintf("failed to download content: status code %d", result.StatusCode)}
		}
		return Result{Warning: fmt.Sprintf("failed to download content: %v", err)}
	}

	text, err := fetch.ExtractVisibleText(result.HTML, noise...)
	if err != nil {
		return Result{Warning: fmt.Sprintf("failed to parse page: %v", err)}
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		html, browserErr := fetch.BrowserSimple(ctx, urlStr)
		if browserErr == nil {
			if rendered, extractErr := fetch.ExtractVisibleText(html, noise...); extractErr == nil {
				text = rendered
			}
		}
	}

	return Result{Text: text}
}
