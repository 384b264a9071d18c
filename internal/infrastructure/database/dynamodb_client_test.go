package database

import (
	"context"
	"testing"

	"quote_service/internal/infrastructure/config"
)

func TestNewAWSConfig(t *testing.T) {
	cfg := config.Config{
		AWSRegion:          "eu-west-2",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "eu-west-2" {
		t.Fatalf("unexpected region %q", awsCfg.Region)
	}

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("unexpected access key %q", creds.AccessKeyID)
	}

	ep, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint("DynamoDB", "eu-west-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.URL != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %q", ep.URL)
	}

	if _, err := awsCfg.EndpointResolverWithOptions.ResolveEndpoint("S3", "eu-west-2"); err == nil {
		t.Fatalf("expected other services to fall back")
	}
}
