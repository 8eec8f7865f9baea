package config

// Session store backends
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

// Environment names
const (
	EnvDev         = "dev"
	EnvDevelopment = "development"
	EnvProduction  = "prod"
)

// Configuration file paths
const (
	ConfigPathClasses = "configs/classes.yaml"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword    = "change_this_secure_password"
	ExampleAdminPassword = "change_this_admin_password"
)
