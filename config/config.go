package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends understood by the application.
const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	StorageBackend string
	DataFilePath   string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
	DBConnectRetries int

	LogLevel string
	LogColor bool

	FluentEnabled bool
	FluentHost    string
	FluentPort    int
	FluentTag     string
}

// Load reads the .env file (if present) and returns a populated Config struct.
func Load(envPath ...string) *Config {
	if err := godotenv.Load(envPath...); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendJSON)),
		DataFilePath:   getEnv("DATA_FILE_PATH", "./data/addressbook.json"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "matcher"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "matcher123"),
		PostgresDB:       getEnv("POSTGRES_DB", "property_matcher"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		DBConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 5),

		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogColor: getEnvBool("LOG_COLOR", true),

		FluentEnabled: getEnvBool("FLUENT_ENABLED", false),
		FluentHost:    getEnv("FLUENT_HOST", "127.0.0.1"),
		FluentPort:    getEnvInt("FLUENT_PORT", 24224),
		FluentTag:     getEnv("FLUENT_TAG", "property-matcher"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("[config] Invalid int for %s=%q, using default %d", key, val, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("[config] Invalid bool for %s=%q, using default %t", key, val, fallback)
		return fallback
	}
	return b
}
