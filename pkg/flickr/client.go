package flickr

import (
	"context"
	"time"
)

// Flickr API method names.
const (
	MethodFindByEmail     = "flickr.people.findByEmail"
	MethodFindByUsername  = "flickr.people.findByUsername"
	MethodGetInfo         = "flickr.people.getInfo"
	MethodGetPublicGroups = "flickr.people.getPublicGroups"
	MethodGetPublicPhotos = "flickr.people.getPublicPhotos"
	MethodGetPhotos       = "flickr.people.getPhotos"
	MethodGetUploadStatus = "flickr.people.getUploadStatus"
)

// PeopleClient looks up Flickr users and their public data.
type PeopleClient interface {
	// FindByEmail returns the user's ID and username.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByUsername returns the user's ID and username.
	FindByUsername(ctx context.Context, username string) (*User, error)
	// GetInfo returns the full profile of a user.
	GetInfo(ctx context.Context, userID string) (*User, error)
	// GetPublicGroups returns the groups the user is a public member of.
	GetPublicGroups(ctx context.Context, userID string) ([]Group, error)
	// GetPublicPhotos returns one page of the user's public photos.
	GetPublicPhotos(ctx context.Context, userID string, params *PhotosParams) (*PhotoList, error)
	// GetPhotos returns one page of the photos visible to the calling user.
	// Requires OAuth credentials.
	GetPhotos(ctx context.Context, userID string, params *PhotosParams) (*PhotoList, error)
	// GetUploadStatus returns bandwidth and file size limits of the calling
	// user. Requires OAuth credentials.
	GetUploadStatus(ctx context.Context) (*User, error)
}

type Client interface {
	People() PeopleClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a flickr.Client.
//
// # Authentication
//
// APIKey is always required and is sent as the api_key parameter. When
// OAuthToken is set as well, every request is signed with OAuth 1.0a
// (HMAC-SHA1) using SharedSecret and OAuthTokenSecret; authenticated methods
// such as flickr.people.getPhotos need this.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to client
// methods. Transport retries of 5xx/429 responses and connection errors are
// tuned with RetryMax/RetryWaitMin/RetryWaitMax. Service-level failures
// (stat "fail") are never retried.
type Config struct {
	// Endpoint: REST endpoint, defaults to https://api.flickr.com/services/rest/.
	Endpoint string

	// APIKey: application key issued by Flickr.
	APIKey string
	// SharedSecret: application secret used to sign requests.
	SharedSecret string
	// OAuthToken: access token of the authorizing user.
	OAuthToken string
	// OAuthTokenSecret: secret belonging to OAuthToken.
	OAuthTokenSecret string

	// HTTPTimeout: timeout of a single HTTP attempt. Zero uses the default.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport retries. Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Interceptors: optional hooks run around every API call.
	Interceptors *InterceptorChain
}
