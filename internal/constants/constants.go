package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoints and request format.
const (
	// DefaultEndpoint is the Flickr REST endpoint.
	DefaultEndpoint = "https://api.flickr.com/services/rest/"

	// ResponseFormat selects JSON responses.
	ResponseFormat = "json"

	// NoJSONCallback disables the JSONP wrapper around JSON responses.
	NoJSONCallback = "1"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "flickr-go/1.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Pagination and display limits.
const (
	// StandardPageSize is the page size used by the CLI.
	StandardPageSize = 50

	// MaxPageSize is the largest page Flickr serves.
	MaxPageSize = 500

	// MaxPages is used to prevent infinite loops in pagination.
	MaxPages = 50
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// CheckMarkSymbol marks true flags in tables.
	CheckMarkSymbol = "✓"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2
)
