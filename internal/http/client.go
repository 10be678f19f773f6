package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/flickr/internal/constants"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// Static errors for err113 compliance.
var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

const maxLoggedBody = 512

// Logger is the logging interface used by the HTTP layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends form-encoded requests to the Flickr REST endpoint.
type Client struct {
	endpoint     string
	apiKey       string
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *flickr.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries of connection errors, 5xx and 429 responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPClient replaces the underlying *http.Client, e.g. with one that
// signs requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient = httpClient
	}
}

// WithInterceptors runs the given chain around every call.
func WithInterceptors(chain *flickr.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for the given endpoint. The API key is added to
// every request.
func NewClient(endpoint, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		endpoint:     endpoint,
		apiKey:       apiKey,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		interceptors: flickr.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// Request is a single API call.
type Request struct {
	Params  flickr.Parameters
	Headers map[string]string
}

// Response is the raw HTTP outcome of a call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Call sends the parameters and decodes the Flickr response envelope.
func (c *Client) Call(ctx context.Context, params flickr.Parameters) (*flickr.Response, error) {
	resp, err := c.Do(ctx, &Request{Params: params})
	if err != nil {
		return nil, err
	}

	envelope, err := flickr.ParseResponse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", params.Method(), err)
	}

	return envelope, nil
}

// Do performs the HTTP round trip. A non-2xx status returns both the
// response and a *flickr.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Params.Method()
	op := "calling " + method

	info := &flickr.RequestInfo{
		APIMethod: method,
		Params:    req.Params,
		Headers:   make(http.Header),
	}

	for key, value := range req.Headers {
		info.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, info)
	if err != nil {
		return nil, &flickr.TransportError{Op: op, Err: err}
	}

	form := c.formValues(req.Params)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form))
	if err != nil {
		return nil, &flickr.TransportError{Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range info.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	c.logRequest(method, req.Params)

	start := time.Now()
	resp, body, err := c.send(httpReq)
	c.logResponse(method, resp, body, time.Since(start), err)

	respInfo := &flickr.ResponseInfo{Error: err}
	if resp != nil {
		respInfo.StatusCode = resp.StatusCode
		respInfo.Headers = resp.Headers
		respInfo.Body = resp.Body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, info, respInfo)

	if err != nil {
		return resp, &flickr.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp, &flickr.TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, truncate(body)),
		}
	}

	if interceptErr != nil {
		return resp, &flickr.TransportError{Op: op, Err: interceptErr}
	}

	return resp, nil
}

func (c *Client) send(req *retryablehttp.Request) (*Response, []byte, error) {
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, body, nil
}

// secretParams are never written to the debug log.
var secretParams = []string{"api_key", "oauth_token", "oauth_token_secret", "oauth_signature"}

// formValues adds api_key and the JSON format selectors to the parameters.
func (c *Client) formValues(params flickr.Parameters) string {
	values := params.Values()
	values.Set("api_key", c.apiKey)
	values.Set("format", constants.ResponseFormat)
	values.Set("nojsoncallback", constants.NoJSONCallback)

	return values.Encode()
}

func (c *Client) logRequest(method string, params flickr.Parameters) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":   method,
		"endpoint": c.endpoint,
		"params":   params.Without(secretParams...).String(),
	})
}

func (c *Client) logResponse(method string, resp *Response, body []byte, duration time.Duration, err error) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method":   method,
		"duration": duration.String(),
	}

	if err != nil {
		fields["error"] = err.Error()
	}

	if resp != nil {
		fields["status"] = resp.StatusCode
		fields["body"] = truncate(body)
	}

	c.logger.Debug("HTTP Response", fields)
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}

	return string(body)
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
