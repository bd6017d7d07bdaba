package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/LootDrop_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port             int
	LogLevel         string
	LogFormat        string
	Environment      string
	ServiceName      string
	Version          string
	LogDir           string
	EnvSchemaVersion string

	APIKey         string // enables the admin routes when set
	TrustedProxies []string
	MaxBodyBytes   int64

	LootTablesPath   string        // empty means the compiled-in catalog
	CatalogReload    time.Duration // zero disables watching LootTablesPath
	SessionCacheSize int
	SessionTTL       time.Duration
	RNGSeed          uint64 // zero means a fresh random seed per roller

	Storage           string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", DefaultVersion),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		EnvSchemaVersion:  getEnv("ENV_SCHEMA_VERSION", ""),
		APIKey:            getEnv("API_KEY", ""),
		TrustedProxies:    splitList(getEnv("TRUSTED_PROXIES", "")),
		MaxBodyBytes:      int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		LootTablesPath:    getEnv("LOOT_TABLES_PATH", ""),
		CatalogReload:     getEnvAsDuration("CATALOG_RELOAD_INTERVAL", 0),
		SessionCacheSize:  getEnvAsInt("SESSION_CACHE_SIZE", DefaultSessionCacheSize),
		SessionTTL:        getEnvAsDuration("SESSION_TTL", DefaultSessionTTL),
		Storage:           strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "lootdrop"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxLifetime),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if seed := getEnv("RNG_SEED", ""); seed != "" {
		cfg.RNGSeed, err = strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RNG_SEED value: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "prod" || c.Environment == "production"
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default
// when it is unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
