package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/flickr/internal/constants"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
	"github.com/fivetwenty-io/flickr/pkg/flickrclient"
)

// clientFactory builds the API client used by commands. Tests replace it.
var clientFactory = createClient //nolint:gochecknoglobals // swapped in tests

// createClient builds a client from the merged flag, env and file settings.
func createClient(ctx context.Context) (flickr.Client, error) {
	config := loadConfig()

	if config.APIKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	verbose := viper.GetBool("verbose")
	logger := newLogger(verbose)

	chain := flickr.NewInterceptorChain()
	if config.RateLimit > 0 {
		chain.AddRequestInterceptor(flickr.RateLimitInterceptor(config.RateLimit))
	}

	if verbose {
		chain.AddRequestInterceptor(flickr.LoggingInterceptor(logger))
		chain.AddResponseInterceptor(flickr.LoggingResponseInterceptor(logger))
	}

	client, err := flickrclient.New(ctx, &flickr.Config{
		Endpoint:         config.Endpoint,
		APIKey:           config.APIKey,
		SharedSecret:     config.SharedSecret,
		OAuthToken:       config.Token,
		OAuthTokenSecret: config.TokenSecret,
		RetryMax:         constants.DefaultRetryMax,
		RetryWaitMin:     constants.DefaultRetryWaitMin,
		RetryWaitMax:     constants.DefaultRetryWaitMax,
		Debug:            verbose,
		Logger:           logger,
		Interceptors:     chain,
	})
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// outputFormat returns the validated --output value.
func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// render writes value as JSON or YAML, or calls table for table output.
func render(out io.Writer, value interface{}, table func(io.Writer) error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err = encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(constants.JSONIndentSize)

		err = encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		return table(out)
	}
}

// valueOrNA renders empty strings as N/A in tables.
func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// checkMark renders a flag as a check mark or blank.
func checkMark(value bool) string {
	if value {
		return constants.CheckMarkSymbol
	}

	return ""
}
