package cli

import (
	"fmt"
	"os"
	"time"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Timeout   time.Duration
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("FOUNDRY_SERVER", "http://localhost:8080"),
		Output:    getEnvOrDefault("FOUNDRY_OUTPUT", FormatText),
		Timeout:   30 * time.Second,
	}
}

// Validate checks flag values after parsing
func (c *Config) Validate() error {
	if c.Output != FormatText && c.Output != FormatJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", c.Output)
	}
	if c.ServerURL == "" {
		return fmt.Errorf("--server must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
