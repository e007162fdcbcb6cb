// Package config resolves runtime settings from Viper and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"

	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/errors"
)

// Environment variable keys recognized by the client.
const (
	KeyBaseURL       = "ONBOARDING_API_URL"
	KeyAdminEmail    = "ADMIN_EMAIL"
	KeyAdminPassword = "ADMIN_PASSWORD"
	KeyCustomerEmail = "CUSTOMER_EMAIL"
	KeyIndustryID    = "INDUSTRY_ID"
	KeyStoreDSN      = "METRICSTORE_DSN"
)

// Keys lists every environment key in one place so the CLI can bind them
// to Viper before reading.
func Keys() []string {
	return []string{
		KeyBaseURL,
		KeyAdminEmail,
		KeyAdminPassword,
		KeyCustomerEmail,
		KeyIndustryID,
		KeyStoreDSN,
	}
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	// Check OS env directly first
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	// If Viper doesn't have it but OS does, return OS value
	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Settings are the resolved client settings for a run.
type Settings struct {
	BaseURL       string
	AdminEmail    string
	AdminPassword string
	CustomerEmail string
	IndustryID    int64
	StoreDSN      string
}

// Load resolves settings from Viper and the environment. The industry id
// falls back to the default when unset; a value that is set but not an
// integer is a configuration error.
func Load() (Settings, error) {
	s := Settings{
		BaseURL:       GetString(KeyBaseURL),
		AdminEmail:    GetString(KeyAdminEmail),
		AdminPassword: GetString(KeyAdminPassword),
		CustomerEmail: GetString(KeyCustomerEmail),
		StoreDSN:      GetString(KeyStoreDSN),
		IndustryID:    constants.DefaultIndustryID,
	}

	if raw := GetString(KeyIndustryID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Settings{}, &errors.ConfigError{
				Component: "config",
				Message:   fmt.Sprintf("%s must be an integer, got %q", KeyIndustryID, raw),
				Err:       err,
			}
		}
		s.IndustryID = id
	}
	return s, nil
}
