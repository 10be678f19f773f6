package client

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/fivetwenty-io/flickr/internal/auth"
	"github.com/fivetwenty-io/flickr/internal/constants"
	"github.com/fivetwenty-io/flickr/internal/http"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// Static errors for err113 compliance.
var (
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
)

// Transport sends a parameter list to the API and returns the decoded
// response envelope.
type Transport interface {
	Call(ctx context.Context, params flickr.Parameters) (*flickr.Response, error)
}

// Client implements the flickr.Client interface.
type Client struct {
	transport Transport
	logger    flickr.Logger

	// Resource clients
	people flickr.PeopleClient
}

// New creates a new Flickr API client.
func New(ctx context.Context, config *flickr.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, ErrEndpointRequired
	}

	if config.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	creds := &auth.Credentials{
		APIKey:       config.APIKey,
		SharedSecret: config.SharedSecret,
		Token:        config.OAuthToken,
		TokenSecret:  config.OAuthTokenSecret,
	}

	timeout := constants.DefaultHTTPTimeout
	if config.HTTPTimeout > 0 {
		timeout = config.HTTPTimeout
	}

	signingClient, err := auth.NewHTTPClient(ctx, creds, newBaseHTTPClient(timeout))
	if err != nil {
		return nil, fmt.Errorf("configuring request signing: %w", err)
	}

	httpOpts := createHTTPClientOptions(config)
	httpOpts = append(httpOpts, http.WithHTTPClient(signingClient))

	httpClient := http.NewClient(config.Endpoint, config.APIKey, httpOpts...)

	client := &Client{
		transport: httpClient,
		logger:    config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewWithTransport creates a client on top of a custom transport.
func NewWithTransport(transport Transport, logger flickr.Logger) *Client {
	client := &Client{
		transport: transport,
		logger:    logger,
	}

	client.initializeResourceClients()

	return client
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *flickr.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// People implements flickr.Client.People.
func (c *Client) People() flickr.PeopleClient {
	return c.people
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.people = NewPeopleClient(c.transport)
}

// loggerAdapter adapts flickr.Logger to http.Logger.
type loggerAdapter struct {
	logger flickr.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

func newBaseHTTPClient(timeout time.Duration) *nethttp.Client {
	return &nethttp.Client{Timeout: timeout}
}
