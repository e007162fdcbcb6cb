// Package constants provides shared constants used throughout the domainmap codebase.
// This includes timeouts, file permissions, and default values that should be
// consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for requests to the onboarding API
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultStoreTimeout is the standard timeout for metric store queries
	DefaultStoreTimeout = 10 * time.Second

	// AssembleTimeout is the overall timeout for a full assemble run
	AssembleTimeout = 5 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like credentials (rw-------)
	SecureFilePermissions = 0600
)

// Default values
const (
	// DefaultIndustryID is the industry used when none is configured
	DefaultIndustryID = 1915

	// KPIListType is the fixed query parameter value for the industry KPI listing
	KPIListType = "1"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)
