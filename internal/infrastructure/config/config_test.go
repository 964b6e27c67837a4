package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "RECYCLE_BIN_RETENTION_DAYS", "QUOTES_SERVICE_URL", "QUOTES_RETRY_ATTEMPTS", "QUOTES_RETRY_DELAY", "AWS_REGION", "AWS_ACCESS_KEY_ID", "DYNAMODB_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 || cfg.StoreDriver != StoreDynamoDB || cfg.RetentionDays != 30 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DynamoDB.Region != "us-east-1" || cfg.DynamoDB.AccessKeyID != "local" || cfg.DynamoDB.Endpoint != "" {
		t.Fatalf("unexpected dynamodb defaults: %+v", cfg.DynamoDB)
	}
	if cfg.Quotes.BaseURL != "" || cfg.Quotes.RetryAttempts != 3 || cfg.Quotes.RetryDelay != 200*time.Millisecond {
		t.Fatalf("unexpected quote defaults: %+v", cfg.Quotes)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("RECYCLE_BIN_RETENTION_DAYS", "45")
	t.Setenv("QUOTES_SERVICE_URL", " http://quotes:8081/ ")
	t.Setenv("QUOTES_RETRY_ATTEMPTS", "nope")
	t.Setenv("QUOTES_RETRY_DELAY", "1s")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("MEMORY_SEED_FILE", " seed.json ")

	cfg := Load()
	if cfg.Port != 9090 || cfg.StoreDriver != StoreMemory || cfg.RetentionDays != 45 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DynamoDB.Endpoint != "http://dynamodb:8000" || cfg.MemorySeedFile != "seed.json" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Quotes.BaseURL != "http://quotes:8081" {
		t.Fatalf("expected trimmed base url, got %q", cfg.Quotes.BaseURL)
	}
	if cfg.Quotes.RetryAttempts != 3 {
		t.Fatalf("invalid attempts should fall back to default, got %d", cfg.Quotes.RetryAttempts)
	}
	if cfg.Quotes.RetryDelay != time.Second {
		t.Fatalf("unexpected delay: %s", cfg.Quotes.RetryDelay)
	}
}
