package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	APIKey    string
	KeyFile   string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WCAP_SERVER", "http://localhost:8080"),
		APIKey:    os.Getenv("WCAP_API_KEY"),
		KeyFile:   getEnvOrDefault("WCAP_API_KEY_FILE", defaultKeyFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadKey loads the API key from file if not already set
func (c *Config) LoadKey() error {
	if c.APIKey != "" {
		return nil
	}

	data, err := os.ReadFile(c.KeyFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No key file is fine
		}
		return err
	}

	c.APIKey = strings.TrimSpace(string(data))
	return nil
}

// SaveKey saves the API key to the key file
func (c *Config) SaveKey(key string) error {
	c.APIKey = key

	dir := filepath.Dir(c.KeyFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.KeyFile, []byte(key), 0600)
}

func defaultKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wcadvisor/key"
	}
	return filepath.Join(home, ".wcadvisor", "key")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
