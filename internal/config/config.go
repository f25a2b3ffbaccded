package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, sourced from the environment.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Logger   LoggerConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string
}

type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	// ConnMaxLifetime in seconds; zero means connections are reused forever.
	ConnMaxLifetime int
}

type LoggerConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Development switches zap to its console encoder.
	Development bool
}

type JWTConfig struct {
	Secret string
	// TokenTTL in hours.
	TokenTTL int
}

// Load reads configuration from the environment, applying defaults for
// anything unset. Call godotenv.Load first if a .env file should be honoured.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Postgres: PostgresConfig{
			URL:             getEnv("DATABASE_URL", "postgres://localhost:5432/stocksense?sslmode=disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOGGER_LEVEL", "info"),
			Development: getEnvBool("LOGGER_DEVELOPMENT", false),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "change-me-in-production"),
			TokenTTL: getEnvInt("JWT_TOKEN_TTL_HOURS", 24),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
