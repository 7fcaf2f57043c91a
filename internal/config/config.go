package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Catalog source selectors for CATALOG_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Port    string
	GinMode string

	CatalogSource string
	CatalogDir    string

	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool

	ExplainAPIURL  string
	ExplainTimeout time.Duration
}

func Load() *Config {
	// A missing .env is fine; env vars and defaults still apply.
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		CatalogSource:  getEnv("CATALOG_SOURCE", SourceEmbedded),
		CatalogDir:     getEnv("CATALOG_DIR", "config"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "cqs"),
		DBPassword:     getEnv("DB_PASSWORD", "cqs_secret"),
		DBName:         getEnv("DB_NAME", "cqs"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:    getEnv("AUTO_MIGRATE", "false") == "true",
		ExplainAPIURL:  getEnv("EXPLAIN_API_URL", ""),
		ExplainTimeout: time.Duration(getEnvInt("EXPLAIN_TIMEOUT_MS", 2000)) * time.Millisecond,
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
