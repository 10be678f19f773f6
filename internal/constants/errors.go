package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured   = errors.New("no API key configured, use 'flickr config set api_key <key>' or set FLICKR_API_KEY")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
	ErrSecretsCannotBeShown = errors.New("secrets are masked, edit the config file to inspect them")
)

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidPerPage      = errors.New("--per-page must be between 1 and 500")
	ErrInvalidRateLimit    = errors.New("rate_limit must be a non-negative integer")
	ErrAuthRequired        = errors.New("this command requires OAuth credentials, run 'flickr config set-credentials'")
)
