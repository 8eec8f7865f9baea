package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/osse101/CharacterCreator_Go/internal/logger"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

var validSessionStores = map[string]bool{
	SessionStoreMemory:   true,
	SessionStorePostgres: true,
	SessionStoreRedis:    true,
}

// Validate checks parsed values for combinations the service cannot run with
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.LogLevel))
	}
	if !validSessionStores[c.SessionStore] {
		problems = append(problems, fmt.Sprintf("SESSION_STORE must be memory, postgres or redis (got %q)", c.SessionStore))
	}
	if c.SessionStore == SessionStoreRedis && c.RedisAddr == "" {
		problems = append(problems, "REDIS_ADDR must be set when SESSION_STORE=redis")
	}
	if c.SessionTTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	adminSet := 0
	for _, v := range []string{c.AdminUsername, c.AdminEmail, c.AdminPassword} {
		if v != "" {
			adminSet++
		}
	}
	if adminSet != 0 && adminSet != 3 {
		problems = append(problems, "ADMIN_USERNAME, ADMIN_EMAIL and ADMIN_PASSWORD must be set together")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("ADMIN_PASSWORD") == ExampleAdminPassword {
		warnings = append(warnings, "ADMIN_PASSWORD appears to be using the example value - choose a unique administrator password")
	}
	if os.Getenv("SESSION_COOKIE_SECURE") != "true" && os.Getenv("ENVIRONMENT") == EnvProduction {
		warnings = append(warnings, "SESSION_COOKIE_SECURE should be true in production")
	}

	return warnings, nil
}
