package database

import (
	"context"
	"testing"

	"cleaning_coop/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewAWSConfig_LocalEndpointUsesStaticCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewAWSConfig(context.Background(), config.AWSConfig{Region: "ap-northeast-2", DynamoDBEndpoint: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "ap-northeast-2" {
		t.Fatalf("expected ap-northeast-2, got %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
		t.Fatalf("expected local credentials, got %q/%q", creds.AccessKeyID, creds.SecretAccessKey)
	}
}

func TestEndpointOption(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		var o dynamodb.Options
		endpointOption("http://dynamodb:8000")(&o)
		if o.BaseEndpoint == nil || *o.BaseEndpoint != "http://dynamodb:8000" {
			t.Fatalf("expected base endpoint, got %v", o.BaseEndpoint)
		}
	})

	t.Run("empty leaves default", func(t *testing.T) {
		var o dynamodb.Options
		endpointOption("")(&o)
		if o.BaseEndpoint != nil {
			t.Fatalf("expected nil base endpoint, got %q", *o.BaseEndpoint)
		}
	})
}
