package flickr

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError is a failure reported by the Flickr API in its own error
// envelope ({"stat":"fail","code":...,"message":...}).
type ServiceError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("flickr: %s (code: %d)", e.Message, e.Code)
}

// DecodeError reports that a success payload did not have the expected shape.
type DecodeError struct {
	// Path is the dotted location of the offending field, e.g. "groups.group[2].nsid".
	Path   string `json:"path"   yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %s", e.Path, e.Reason)
}

// TransportError is a network, signing or HTTP level failure.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d: %v", e.Op, e.StatusCode, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Error codes returned by the Flickr API.
const (
	ErrorCodeUserNotFound            = 1
	ErrorCodeNoPhotos                = 2
	ErrorCodeSSLRequired             = 95
	ErrorCodeInvalidSignature        = 96
	ErrorCodeMissingSignature        = 97
	ErrorCodeLoginFailed             = 98
	ErrorCodeInsufficientPermissions = 99
	ErrorCodeInvalidAPIKey           = 100
	ErrorCodeServiceUnavailable      = 105
	ErrorCodeWriteOperationFailed    = 106
	ErrorCodeFormatNotFound          = 111
	ErrorCodeMethodNotFound          = 112
	ErrorCodeInvalidSOAPEnvelope     = 114
	ErrorCodeInvalidXMLRPCCall       = 115
	ErrorCodeBadURLFound             = 116
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
	ErrEndpointRequired = errors.New("API endpoint is required")
	ErrNoMoreItems      = errors.New("no more items")
	ErrInvalidEndpoint  = errors.New("invalid API endpoint")
	ErrResponseNotJSON  = errors.New("response body is not JSON")
)

// IsServiceError checks if the error is a ServiceError.
func IsServiceError(err error) bool {
	serviceErr := &ServiceError{}

	return errors.As(err, &serviceErr)
}

// IsDecodeError checks if the error is a DecodeError.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsTransportError checks if the error is a TransportError.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsUserNotFound checks if the service reported an unknown user.
func IsUserNotFound(err error) bool {
	return serviceCode(err) == ErrorCodeUserNotFound
}

// IsUnauthorized checks if the service rejected the credentials or signature.
func IsUnauthorized(err error) bool {
	switch serviceCode(err) {
	case ErrorCodeInvalidSignature, ErrorCodeMissingSignature, ErrorCodeLoginFailed,
		ErrorCodeInsufficientPermissions, ErrorCodeInvalidAPIKey:
		return true
	default:
		return false
	}
}

// IsRetryable reports whether the failure is potentially transient. The
// client itself never retries at this level.
func IsRetryable(err error) bool {
	if serviceCode(err) == ErrorCodeServiceUnavailable {
		return true
	}

	transportErr := &TransportError{}
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode == http.StatusTooManyRequests ||
			transportErr.StatusCode >= http.StatusInternalServerError
	}

	return false
}

func serviceCode(err error) int {
	serviceErr := &ServiceError{}
	if errors.As(err, &serviceErr) {
		return serviceErr.Code
	}

	return 0
}
