// Package profile looks up people-profile records from an external profile
// API and normalizes them into bounded plain text for prompt composition.
package profile

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/coverletter-agent/internal/fetch"
)

//go:embed profile_schema.json
var profileSchema []byte

// Client calls the people-profile API. The API is keyed by a public profile
// URL and returns a nested field mapping.
type Client struct {
	baseURL string
	apiKey  string
	schema  *gojsonschema.Schema
}

// NewClient creates a profile API client.
func NewClient(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("profile API base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("profile API key is required")
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(profileSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile profile schema: %w", err)
	}

	return &Client{baseURL: baseURL, apiKey: apiKey, schema: schema}, nil
}

// Lookup fetches the raw profile record for a public profile URL. The
// response is schema-checked before use so a malformed payload is reported
// as a lookup failure, not passed downstream.
func (c *Client) Lookup(ctx context.Context, profileURL string) (map[string]any, error) {
	query := url.Values{}
	query.Set("url", profileURL)
	endpoint := c.baseURL + "?" + query.Encode()

	opts := fetch.DefaultOptions()
	opts.Headers = map[string]string{"Authorization": "Bearer " + c.apiKey}

	result, err := fetch.URL(ctx, endpoint, opts)
	if err != nil {
		if result != nil && result.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("profile API authentication failed: %w", err)
		}
		return nil, fmt.Errorf("profile lookup failed: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(result.HTML), &raw); err != nil {
		return nil, fmt.Errorf("malformed profile response: %w", err)
	}

	validation, err := c.schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("profile schema validation failed: %w", err)
	}
	if !validation.Valid() {
		return nil, fmt.Errorf("malformed profile response: %s", validation.Errors()[0].String())
	}

	return raw, nil
}
