package database

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

// DynamoDBSettings locates the session table backend.
//
// Env fallbacks (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
type DynamoDBSettings struct {
	Region   string
	Endpoint string
}

// DynamoDBSettingsFromEnv reads the settings from the environment.
func DynamoDBSettingsFromEnv() DynamoDBSettings {
	return DynamoDBSettings{
		Region:   getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint: os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB builds a DynamoDB client for the form session store.
func ConnectDynamoDB(ctx context.Context, settings DynamoDBSettings) (*dynamodb.Client, error) {
	cfg, err := newAWSConfig(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if settings.Endpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(settings.Endpoint)
		})
	}
	logrus.WithFields(logrus.Fields{
		"component": "[database][dynamodb]",
		"region":    cfg.Region,
		"endpoint":  settings.Endpoint,
	}).Info("dynamodb client ready")
	return dynamodb.NewFromConfig(cfg, opts...), nil
}

func newAWSConfig(ctx context.Context, settings DynamoDBSettings) (aws.Config, error) {
	region := settings.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}

	// A local endpoint does not validate credentials, but the SDK requires some.
	if settings.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)))
	}
	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
