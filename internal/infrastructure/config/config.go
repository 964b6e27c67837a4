// Package config reads service settings from the environment. Values from a
// local .env file are loaded by godotenv/autoload in the entry points.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gestion_tramites/internal/domain/lifecycle"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port           int
	StoreDriver    string
	MemorySeedFile string
	RetentionDays  int
	LogLevel       string
	DynamoDB       DynamoDBConfig
	Quotes         QuotesConfig
}

// DynamoDBConfig is local-friendly: DynamoDB Local ignores the credentials
// but the SDK still requires some.
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// QuotesConfig points at the quote subsystem. An empty BaseURL disables it.
type QuotesConfig struct {
	BaseURL       string
	Token         string
	RetryAttempts int
	RetryDelay    time.Duration
	Timeout       time.Duration
}

// Load reads the configuration, applying defaults for missing or invalid values.
func Load() Config {
	return Config{
		Port:           getenvInt("PORT", 8080),
		StoreDriver:    strings.ToLower(strings.TrimSpace(getenvDefault("STORE_DRIVER", StoreDynamoDB))),
		MemorySeedFile: strings.TrimSpace(os.Getenv("MEMORY_SEED_FILE")),
		RetentionDays:  getenvInt("RECYCLE_BIN_RETENTION_DAYS", lifecycle.DefaultRetentionDays),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		DynamoDB: DynamoDBConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Quotes: QuotesConfig{
			BaseURL:       strings.TrimRight(strings.TrimSpace(os.Getenv("QUOTES_SERVICE_URL")), "/"),
			Token:         strings.TrimSpace(os.Getenv("QUOTES_SERVICE_TOKEN")),
			RetryAttempts: getenvInt("QUOTES_RETRY_ATTEMPTS", 3),
			RetryDelay:    getenvDuration("QUOTES_RETRY_DELAY", 200*time.Millisecond),
			Timeout:       getenvDuration("QUOTES_TIMEOUT", 10*time.Second),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
