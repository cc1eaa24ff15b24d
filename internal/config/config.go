package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	BackendURL            string `mapstructure:"backend_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds"`
	DraftDebounceMillis   int    `mapstructure:"draft_debounce_ms"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	// A local .env can override the portal URL per checkout; missing is fine.
	_ = godotenv.Load()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".campusplace")
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("backend_url", "http://localhost:4000")
	viper.SetDefault("request_timeout_seconds", 15)
	viper.SetDefault("draft_debounce_ms", 1000)

	viper.SetEnvPrefix("campusplace")
	viper.AutomaticEnv()

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# campusplace configuration
# URL of the placement portal backend
backend_url: http://localhost:4000

# Timeout for backend requests, in seconds
request_timeout_seconds: 15

# Quiet window for draft autosave, in milliseconds
draft_debounce_ms: 1000
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".campusplace", "config.yaml")
}
