package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/experienceflow/domainmap/internal/config"
	"github.com/experienceflow/domainmap/pkg/constants"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Onboarding API configuration
	BaseURL       string
	AdminEmail    string
	AdminPassword string
	CustomerEmail string
	IndustryID    int64
	Timeout       time.Duration
	InsecureTLS   bool

	// Metric store configuration
	StoreDSN string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.domainmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	// Set up Viper for environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Bind the onboarding settings keys
	bindSettingsKeys()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Search for config in standard locations
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".domainmap")
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	// Resolve the onboarding API settings
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	// Build config from viper and settings
	cfg := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Onboarding API configuration
		BaseURL:       settings.BaseURL,
		AdminEmail:    settings.AdminEmail,
		AdminPassword: settings.AdminPassword,
		CustomerEmail: settings.CustomerEmail,
		IndustryID:    settings.IndustryID,
		Timeout:       viper.GetDuration("timeout"),
		InsecureTLS:   viper.GetBool("insecure"),

		// Metric store configuration
		StoreDSN: settings.StoreDSN,

		// Logging configuration
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	// Set defaults
	if cfg.Timeout == 0 {
		cfg.Timeout = constants.DefaultHTTPTimeout
	}

	return cfg, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
}

// Resolve re-reads the onboarding settings, keeping any values already
// set by command flags. The keep function reports whether a flag bound
// to the named key was set explicitly.
func (c *Config) Resolve(keep func(flag string) bool) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	if !keep("base-url") {
		c.BaseURL = settings.BaseURL
	}
	if !keep("industry") {
		c.IndustryID = settings.IndustryID
	}
	if !keep("customer-email") {
		c.CustomerEmail = settings.CustomerEmail
	}
	if !keep("timeout") {
		if timeout := viper.GetDuration("timeout"); timeout > 0 {
			c.Timeout = timeout
		}
	}
	if !keep("insecure") {
		c.InsecureTLS = viper.GetBool("insecure")
	}
	if !keep("store-dsn") {
		c.StoreDSN = settings.StoreDSN
	}
	c.AdminEmail = settings.AdminEmail
	c.AdminPassword = settings.AdminPassword

	return nil
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// Try to load .env files in order of precedence
	// .env.local overrides .env
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindSettingsKeys explicitly binds the onboarding environment variables
// to Viper so values from .env files are visible through it.
func bindSettingsKeys() {
	for _, key := range config.Keys() {
		if err := viper.BindEnv(key); err != nil {
			// Log warning but continue - this isn't critical
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", key, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
