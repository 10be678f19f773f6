// Package auth signs Flickr API requests with OAuth 1.0a.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/dghubble/oauth1"

	"github.com/fivetwenty-io/flickr/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrMissingConsumerSecret = errors.New("shared secret is required to sign requests")
	ErrMissingTokenSecret    = errors.New("OAuth token secret is required to sign requests")
)

// Credentials identify the application and, optionally, the authorizing user.
type Credentials struct {
	APIKey       string `json:"api_key"                      yaml:"api_key"`
	SharedSecret string `json:"shared_secret,omitempty"      yaml:"shared_secret,omitempty"`
	Token        string `json:"oauth_token,omitempty"        yaml:"oauth_token,omitempty"`
	TokenSecret  string `json:"oauth_token_secret,omitempty" yaml:"oauth_token_secret,omitempty"`
}

// CanSign reports whether an access token is present, i.e. requests should
// be signed.
func (c *Credentials) CanSign() bool {
	return c != nil && c.Token != ""
}

// Validate checks that a token comes with the secrets needed to sign.
func (c *Credentials) Validate() error {
	if !c.CanSign() {
		return nil
	}

	if c.SharedSecret == "" {
		return ErrMissingConsumerSecret
	}

	if c.TokenSecret == "" {
		return ErrMissingTokenSecret
	}

	return nil
}

// Masked returns a copy with secrets hidden, for display.
func (c *Credentials) Masked() Credentials {
	masked := *c

	if masked.SharedSecret != "" {
		masked.SharedSecret = constants.MaskedSecret
	}

	if masked.TokenSecret != "" {
		masked.TokenSecret = constants.MaskedSecret
	}

	return masked
}

// NewHTTPClient returns an *http.Client that signs every request with the
// credentials, sending through base. Without a token, base is returned
// unchanged and requests are identified by api_key only.
func NewHTTPClient(ctx context.Context, creds *Credentials, base *http.Client) (*http.Client, error) {
	if base == nil {
		base = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}

	if !creds.CanSign() {
		return base, nil
	}

	err := creds.Validate()
	if err != nil {
		return nil, err
	}

	config := oauth1.NewConfig(creds.APIKey, creds.SharedSecret)
	token := oauth1.NewToken(creds.Token, creds.TokenSecret)

	signed := config.Client(context.WithValue(ctx, oauth1.HTTPClient, base), token)
	signed.Timeout = base.Timeout

	return signed, nil
}
