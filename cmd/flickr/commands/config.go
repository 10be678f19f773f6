package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/flickr/internal/auth"
	"github.com/fivetwenty-io/flickr/internal/constants"
)

// Configuration keys, shared by the config file, viper and FLICKR_* env vars.
const (
	keyEndpoint         = "endpoint"
	keyOutput           = "output"
	keyRateLimit        = "rate_limit"
	keyAPIKey           = "api_key"
	keySharedSecret     = "shared_secret"
	keyOAuthToken       = "oauth_token"
	keyOAuthTokenSecret = "oauth_token_secret"
)

// Config represents the CLI configuration.
type Config struct {
	Endpoint  string `json:"endpoint,omitempty"   yaml:"endpoint,omitempty"`
	Output    string `json:"output,omitempty"     yaml:"output,omitempty"`
	RateLimit int    `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`

	auth.Credentials `yaml:",inline"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage Flickr CLI configuration including credentials and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetCredentialsCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config
			masked.Credentials = config.Masked()

			return render(cmd.OutOrStdout(), masked, func(out io.Writer) error {
				return renderConfigTable(out, &masked)
			})
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := configValue(loadConfig(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

			return err
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: "Set a configuration value. Keys: " + strings.Join([]string{
			keyEndpoint, keyOutput, keyRateLimit, keyAPIKey,
			keySharedSecret, keyOAuthToken, keyOAuthTokenSecret,
		}, ", "),
		Args: cobra.ExactArgs(2), //nolint:mnd // KEY VALUE
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

// CredentialsOptions holds the flags of config set-credentials.
type CredentialsOptions struct {
	APIKey       string
	SharedSecret string
	Token        string
	TokenSecret  string
}

func newConfigSetCredentialsCommand() *cobra.Command {
	var opts CredentialsOptions

	cmd := &cobra.Command{
		Use:   "set-credentials",
		Short: "Store API and OAuth credentials",
		Long: `Store the API key and, optionally, the OAuth 1.0a credentials needed by
authenticated methods. Values not given as flags are prompted for; secrets are
read without echo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetCredentials(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.APIKey, "key", "", "API key")
	cmd.Flags().StringVar(&opts.SharedSecret, "secret", "", "shared secret")
	cmd.Flags().StringVar(&opts.Token, "token", "", "OAuth access token")
	cmd.Flags().StringVar(&opts.TokenSecret, "token-secret", "", "OAuth access token secret")

	return cmd
}

func runSetCredentials(cmd *cobra.Command, opts CredentialsOptions) error {
	config, err := loadConfigFile()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if opts.APIKey == "" {
		opts.APIKey, err = promptLine(reader, out, "API Key: ")
		if err != nil {
			return err
		}
	}

	if opts.Token == "" {
		opts.Token, err = promptLine(reader, out, "OAuth Token (leave empty for public access only): ")
		if err != nil {
			return err
		}
	}

	if opts.Token != "" && opts.SharedSecret == "" {
		opts.SharedSecret, err = promptSecret(out, "Shared Secret: ")
		if err != nil {
			return err
		}
	}

	if opts.Token != "" && opts.TokenSecret == "" {
		opts.TokenSecret, err = promptSecret(out, "OAuth Token Secret: ")
		if err != nil {
			return err
		}
	}

	creds := auth.Credentials{
		APIKey:       opts.APIKey,
		SharedSecret: opts.SharedSecret,
		Token:        opts.Token,
		TokenSecret:  opts.TokenSecret,
	}

	if creds.APIKey == "" {
		return constants.ErrNoAPIKeyConfigured
	}

	err = creds.Validate()
	if err != nil {
		return fmt.Errorf("invalid credentials: %w", err)
	}

	config.Credentials = creds

	err = saveConfig(config)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Credentials saved")

	return nil
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	_, _ = io.WriteString(out, prompt)

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func promptSecret(out io.Writer, prompt string) (string, error) {
	_, _ = io.WriteString(out, prompt)

	secretBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	_, _ = io.WriteString(out, "\n")

	return strings.TrimSpace(string(secretBytes)), nil
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		Endpoint:  viper.GetString(keyEndpoint),
		Output:    viper.GetString(keyOutput),
		RateLimit: viper.GetInt(keyRateLimit),
		Credentials: auth.Credentials{
			APIKey:       viper.GetString(keyAPIKey),
			SharedSecret: viper.GetString(keySharedSecret),
			Token:        viper.GetString(keyOAuthToken),
			TokenSecret:  viper.GetString(keyOAuthTokenSecret),
		},
	}
}

// loadConfigFile reads only what the config file holds, so values that come
// from flags or FLICKR_* env vars are not written back. A missing file yields
// an empty configuration.
func loadConfigFile() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	data, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// configValue returns a non-secret configuration value.
func configValue(config *Config, key string) (string, error) {
	switch key {
	case keyEndpoint:
		return valueOrNA(config.Endpoint), nil
	case keyOutput:
		return valueOrNA(config.Output), nil
	case keyRateLimit:
		return strconv.Itoa(config.RateLimit), nil
	case keyAPIKey:
		return valueOrNA(config.APIKey), nil
	case keyOAuthToken:
		return valueOrNA(config.Token), nil
	case keySharedSecret, keyOAuthTokenSecret:
		return "", constants.ErrSecretsCannotBeShown
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}

// setConfigValue updates one key of the configuration.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyEndpoint:
		config.Endpoint = value
	case keyOutput:
		format := strings.ToLower(value)
		if format != constants.FormatTable && format != constants.FormatJSON && format != constants.FormatYAML {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, value)
		}

		config.Output = format
	case keyRateLimit:
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidRateLimit, value)
		}

		config.RateLimit = limit
	case keyAPIKey:
		config.APIKey = value
	case keySharedSecret:
		config.SharedSecret = value
	case keyOAuthToken:
		config.Token = value
	case keyOAuthTokenSecret:
		config.TokenSecret = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file in use, or ~/.flickr/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".flickr", "config.yml"), nil
}

// saveConfig writes the configuration file and reloads it into viper. Flags
// and env vars keep their precedence over the stored values.
func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.SetConfigFile(configFile)

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config file: %w", err)
	}

	return nil
}

func renderConfigTable(out io.Writer, config *Config) error {
	rows := map[string]string{
		keyEndpoint:         valueOrNA(config.Endpoint),
		keyOutput:           valueOrNA(config.Output),
		keyRateLimit:        strconv.Itoa(config.RateLimit),
		keyAPIKey:           valueOrNA(config.APIKey),
		keySharedSecret:     valueOrNA(config.SharedSecret),
		keyOAuthToken:       valueOrNA(config.Token),
		keyOAuthTokenSecret: valueOrNA(config.TokenSecret),
	}

	keys := make([]string, 0, len(rows))
	for key := range rows {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")

	for _, key := range keys {
		_ = table.Append(key, rows[key])
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
