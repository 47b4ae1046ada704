// Package search provides a thin client for the company/web-search API used
// to resolve a company name into job-relevant page extracts.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/coverletter-agent/internal/fetch"
)

// Result is one search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Extract string `json:"extract"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Client calls the search API.
type Client struct {
	baseURL string
	apiKey  string
}

// NewClient creates a search API client.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("search API base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("search API key is required")
	}
	return &Client{baseURL: baseURL, apiKey: apiKey}, nil
}

// Search runs a query and returns the hits in ranking order.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	endpoint := c.baseURL + "?" + params.Encode()

	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{"Authorization": "Bearer " + c.apiKey}

	result, err := fetch.URL(ctx, endpoint, opts)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	var resp searchResponse
	if err := json.Unmarshal([]byte(result.HTML), &resp); err != nil {
		return nil, fmt.Errorf("malformed search response: %w", err)
	}

	return resp.Results, nil
}

// FlattenResults renders search hits as plain text blocks, in ranking order,
// for use as prompt target text.
func FlattenResults(results []Result) string {
	blocks := make([]string, 0, len(results))
	for _, r := range results {
		if r.Extract == "" {
			continue
		}
		if r.Title != "" {
			blocks = append(blocks, r.Title+"\n"+r.Extract)
		} else {
			blocks = append(blocks, r.Extract)
		}
	}
	return strings.Join(blocks, "\n\n")
}
