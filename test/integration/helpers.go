//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey     string
	Username   string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	username := os.Getenv("FLICKR_TEST_USERNAME")
	if username == "" {
		username = "bees"
	}

	return &TestConfig{
		APIKey:     os.Getenv("FLICKR_API_KEY"),
		Username:   username,
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("FLICKR_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the flickr binary.
func getBinaryPath() string {
	if path := os.Getenv("FLICKR_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../flickr", "./flickr", "../flickr"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "flickr"
}

// SkipIfMissingAPIKey skips tests that talk to the live API.
func (config *TestConfig) SkipIfMissingAPIKey(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("FLICKR_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary additionally skips CLI tests when no binary is built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingAPIKey(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("flickr binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the flickr binary against an isolated home directory.
type CommandRunner struct {
	config *TestConfig
	home   string
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		home:   t.TempDir(),
		t:      t,
	}
}

// Run executes a flickr command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+runner.home, "FLICKR_API_KEY="+runner.config.APIKey)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output looks like YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
