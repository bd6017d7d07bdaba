package config

import "time"

// Default values used when the environment leaves a setting unset
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "lootdrop"
	DefaultVersion          = "dev"
	DefaultLogDir           = "logs"
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
	DefaultMaxBodyBytes     = 1 << 20
	DefaultDBMaxConns       = 20
	DefaultDBMaxIdleTime    = 5 * time.Minute
	DefaultDBMaxLifetime    = 30 * time.Minute
)

// Storage backends for drop history
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Configuration file paths
const (
	ConfigPathLootTables = "configs/loot_tables.yaml"
)

// Example values shipped in .env.example that must never reach production
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
