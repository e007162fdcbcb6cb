package app

import (
	"os"
	"testing"
	"time"

	"github.com/experienceflow/domainmap/pkg/constants"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// Note: LogLevel may be empty (triggers precedence logic in logger.go)
	// LogFormat should have a default
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
	if config.Timeout == 0 {
		t.Error("Timeout not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	oldVerbose := os.Getenv("VERBOSE")
	oldOutput := os.Getenv("OUTPUT")
	defer func() {
		os.Setenv("VERBOSE", oldVerbose)
		os.Setenv("OUTPUT", oldOutput)
	}()

	os.Setenv("VERBOSE", "true")
	os.Setenv("OUTPUT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("VERBOSE environment variable not loaded")
	}
	if config.Output != "json" {
		t.Errorf("OUTPUT = %s, want json", config.Output)
	}
}

// TestConfig_OnboardingSettings verifies the onboarding API settings load
// from their environment keys.
func TestConfig_OnboardingSettings(t *testing.T) {
	oldURL := os.Getenv("ONBOARDING_API_URL")
	oldEmail := os.Getenv("ADMIN_EMAIL")
	oldCustomer := os.Getenv("CUSTOMER_EMAIL")
	oldDSN := os.Getenv("METRICSTORE_DSN")
	defer func() {
		os.Setenv("ONBOARDING_API_URL", oldURL)
		os.Setenv("ADMIN_EMAIL", oldEmail)
		os.Setenv("CUSTOMER_EMAIL", oldCustomer)
		os.Setenv("METRICSTORE_DSN", oldDSN)
	}()

	os.Setenv("ONBOARDING_API_URL", "https://onboarding.example.com")
	os.Setenv("ADMIN_EMAIL", "admin@example.com")
	os.Setenv("CUSTOMER_EMAIL", "customer@example.com")
	os.Setenv("METRICSTORE_DSN", "postgres://metrics@localhost/defs")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.BaseURL != "https://onboarding.example.com" {
		t.Errorf("BaseURL = %s, want https://onboarding.example.com", config.BaseURL)
	}
	if config.AdminEmail != "admin@example.com" {
		t.Errorf("AdminEmail = %s, want admin@example.com", config.AdminEmail)
	}
	if config.CustomerEmail != "customer@example.com" {
		t.Errorf("CustomerEmail = %s, want customer@example.com", config.CustomerEmail)
	}
	if config.StoreDSN != "postgres://metrics@localhost/defs" {
		t.Errorf("StoreDSN = %s, want postgres://metrics@localhost/defs", config.StoreDSN)
	}
}

// TestConfig_IndustryID verifies industry id parsing and its default.
func TestConfig_IndustryID(t *testing.T) {
	oldID := os.Getenv("INDUSTRY_ID")
	defer os.Setenv("INDUSTRY_ID", oldID)

	os.Setenv("INDUSTRY_ID", "42")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.IndustryID != 42 {
		t.Errorf("IndustryID = %d, want 42", config.IndustryID)
	}

	os.Setenv("INDUSTRY_ID", "")

	config, err = LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.IndustryID != constants.DefaultIndustryID {
		t.Errorf("IndustryID = %d, want default %d", config.IndustryID, constants.DefaultIndustryID)
	}
}

// TestConfig_InvalidIndustryID verifies a non-integer industry id fails.
func TestConfig_InvalidIndustryID(t *testing.T) {
	oldID := os.Getenv("INDUSTRY_ID")
	defer os.Setenv("INDUSTRY_ID", oldID)

	os.Setenv("INDUSTRY_ID", "not-a-number")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() with a non-integer INDUSTRY_ID should fail")
	}
}

// TestConfig_Timeout verifies time duration parsing.
func TestConfig_Timeout(t *testing.T) {
	oldTimeout := os.Getenv("TIMEOUT")
	defer os.Setenv("TIMEOUT", oldTimeout)

	os.Setenv("TIMEOUT", "90s")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", config.Timeout)
	}
}

// TestConfig_LoggingOptions verifies logging configuration.
func TestConfig_LoggingOptions(t *testing.T) {
	oldLevel := os.Getenv("LOG_LEVEL")
	oldFormat := os.Getenv("LOG_FORMAT")
	oldOutput := os.Getenv("LOG_OUTPUT")
	defer func() {
		os.Setenv("LOG_LEVEL", oldLevel)
		os.Setenv("LOG_FORMAT", oldFormat)
		os.Setenv("LOG_OUTPUT", oldOutput)
	}()

	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	os.Setenv("LOG_OUTPUT", "stdout")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %s, want json", config.LogFormat)
	}
	if config.LogOutput != "stdout" {
		t.Errorf("LogOutput = %s, want stdout", config.LogOutput)
	}
}

// TestConfig_UpdateFromFlags verifies flag values take precedence.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Output: "table"}

	config.UpdateFromFlags(true, false, true, "yaml")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if config.Quiet {
		t.Error("Quiet should remain false")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.Output != "yaml" {
		t.Errorf("Output = %s, want yaml", config.Output)
	}

	// An empty output flag keeps the configured value
	config.UpdateFromFlags(false, true, false, "")
	if config.Output != "yaml" {
		t.Errorf("Output = %s, want yaml after empty flag", config.Output)
	}
}
