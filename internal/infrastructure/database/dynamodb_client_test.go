package database

import (
	"context"
	"testing"

	"gestion_tramites/internal/infrastructure/config"
)

func TestNewAWSConfig(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), config.DynamoDBConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %s", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.DynamoDBConfig{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("expected base endpoint to be set, got %v", got)
	}
}
