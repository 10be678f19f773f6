// Package flickrclient provides the main entry point for creating Flickr API clients
package flickrclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/flickr/internal/client"
	"github.com/fivetwenty-io/flickr/internal/constants"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// New creates a new Flickr API client. The config is copied; the caller's
// value is never modified.
func New(ctx context.Context, config *flickr.Config) (flickr.Client, error) {
	if config == nil {
		return nil, flickr.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, flickr.ErrAPIKeyRequired
	}

	endpoint, err := normalizeEndpoint(config.Endpoint)
	if err != nil {
		return nil, err
	}

	resolved := *config
	resolved.Endpoint = endpoint

	c, err := client.New(ctx, &resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeEndpoint applies the default endpoint and an https:// scheme when
// none is given.
func normalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return constants.DefaultEndpoint, nil
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", flickr.ErrInvalidEndpoint, err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", flickr.ErrInvalidEndpoint, endpoint)
	}

	return endpoint, nil
}

// NewWithAPIKey creates a client for public methods using the default endpoint.
func NewWithAPIKey(ctx context.Context, apiKey string) (flickr.Client, error) {
	return New(ctx, &flickr.Config{
		APIKey: apiKey,
	})
}

// NewWithOAuth creates a client that signs every request with OAuth 1.0a
// credentials, as needed by authenticated methods such as getPhotos.
func NewWithOAuth(ctx context.Context, apiKey, sharedSecret, token, tokenSecret string) (flickr.Client, error) {
	return New(ctx, &flickr.Config{
		APIKey:           apiKey,
		SharedSecret:     sharedSecret,
		OAuthToken:       token,
		OAuthTokenSecret: tokenSecret,
	})
}
