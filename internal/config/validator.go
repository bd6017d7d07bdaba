package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

var validLogFormats = map[string]bool{"text": true, "json": true}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error

	if c.EnvSchemaVersion != "" && c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		errs = append(errs, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated",
			ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid PORT %d: must be between 0 and 65535", c.Port))
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel))
	}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", c.LogFormat))
	}
	if c.SessionCacheSize <= 0 {
		errs = append(errs, fmt.Errorf("invalid SESSION_CACHE_SIZE %d: must be positive", c.SessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("invalid SESSION_TTL %s: must be positive", c.SessionTTL))
	}
	if c.CatalogReload < 0 {
		errs = append(errs, fmt.Errorf("invalid CATALOG_RELOAD_INTERVAL %s: must not be negative", c.CatalogReload))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("invalid MAX_BODY_BYTES %d: must be positive", c.MaxBodyBytes))
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		errs = append(errs, c.validateDatabase()...)
	default:
		errs = append(errs, fmt.Errorf("invalid STORAGE %q: must be %s or %s", c.Storage, StorageMemory, StoragePostgres))
	}

	if c.IsProduction() && c.APIKey == "" {
		errs = append(errs, errors.New("API_KEY environment variable must be set in production"))
	}

	return errors.Join(errs...)
}

func (c *Config) validateDatabase() []error {
	var missing []string
	for name, value := range map[string]string{
		"DB_USER": c.DBUser,
		"DB_HOST": c.DBHost,
		"DB_PORT": c.DBPort,
		"DB_NAME": c.DBName,
	} {
		if value == "" {
			missing = append(missing, name)
		}
	}

	var errs []error
	if len(missing) > 0 {
		// map iteration order is random
		slices.Sort(missing)
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}
	if c.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("invalid DB_MAX_CONNS %d: must be positive", c.DBMaxConns))
	}
	return errs
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.EnvSchemaVersion == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set - expected %s", ExpectedEnvSchemaVersion))
	}
	if c.Storage == StoragePostgres && c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.CatalogReload > 0 && c.LootTablesPath == "" {
		warnings = append(warnings, "CATALOG_RELOAD_INTERVAL is set without LOOT_TABLES_PATH - nothing to watch")
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is not set - admin routes are disabled")
	}

	return warnings
}
