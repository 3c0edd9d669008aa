package aws

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cyphera/taxjar-go/internal/logger"
)

// SecretsAPI is the subset of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc    SecretsAPI
	logger *zap.Logger
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI builds a client around an existing API implementation.
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{
		svc:    svc,
		logger: logger.Log,
	}
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN specified by an environment variable.
// If the ARN environment variable (secretArnEnvVar) is not set or fetching fails,
// it falls back to reading the secret directly from another environment variable (fallbackEnvVar).
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		value, err := c.FetchSecret(ctx, secretArn)
		if err == nil {
			return value, nil
		}
		c.logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		c.logger.Debug("Secret ARN environment variable not set, falling back to direct env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	if secretValue := os.Getenv(fallbackEnvVar); secretValue != "" {
		c.logger.Debug("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	return "", errors.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// FetchSecret reads one secret by ARN. Secrets stored as a JSON object are
// accepted when they carry an "api_key" or "TAXJAR_API_KEY" member; anything
// else is returned verbatim.
func (c *SecretsManagerClient) FetchSecret(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to get secret %s", secretArn)
	}
	if result.SecretString == nil || strings.TrimSpace(*result.SecretString) == "" {
		return "", errors.Errorf("secret %s is empty", secretArn)
	}

	raw := strings.TrimSpace(*result.SecretString)
	if strings.HasPrefix(raw, "{") {
		var payload map[string]string
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return "", errors.Wrapf(err, "secret %s is not a flat JSON object", secretArn)
		}
		for _, key := range []string{"api_key", "TAXJAR_API_KEY"} {
			if v := strings.TrimSpace(payload[key]); v != "" {
				return v, nil
			}
		}
		return "", errors.Errorf("secret %s has no api_key member", secretArn)
	}

	c.logger.Debug("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
	return raw, nil
}
