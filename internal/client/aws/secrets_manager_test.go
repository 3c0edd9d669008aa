package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	calls  []string
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	id := aws.ToString(params.SecretId)
	f.calls = append(f.calls, id)
	value, ok := f.values[id]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

const testARN = "arn:aws:secretsmanager:us-east-1:123456789012:secret:taxjar"

func TestFetchSecret(t *testing.T) {
	testCases := []struct {
		name     string
		secret   string
		expected string
		wantErr  bool
	}{
		{"Plain string", "  plain-key\n", "plain-key", false},
		{"JSON api_key", `{"api_key":"json-key"}`, "json-key", false},
		{"JSON env name", `{"TAXJAR_API_KEY":"env-named-key"}`, "env-named-key", false},
		{"JSON without key", `{"other":"x"}`, "", true},
		{"Malformed JSON", `{"api_key":`, "", true},
		{"Empty", "   ", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{testARN: tc.secret}})

			value, err := client.FetchSecret(context.Background(), testARN)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestGetSecretString(t *testing.T) {
	t.Run("Uses Secrets Manager when ARN is set", func(t *testing.T) {
		t.Setenv("TAXJAR_API_KEY_SECRET_ARN", testARN)
		t.Setenv("TAXJAR_API_KEY", "env-key")
		fake := &fakeSecrets{values: map[string]string{testARN: "secret-key"}}

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(context.Background(), "TAXJAR_API_KEY_SECRET_ARN", "TAXJAR_API_KEY")
		require.NoError(t, err)
		assert.Equal(t, "secret-key", value)
		assert.Equal(t, []string{testARN}, fake.calls)
	})

	t.Run("Falls back to env var when lookup fails", func(t *testing.T) {
		t.Setenv("TAXJAR_API_KEY_SECRET_ARN", testARN)
		t.Setenv("TAXJAR_API_KEY", "env-key")
		fake := &fakeSecrets{}

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(context.Background(), "TAXJAR_API_KEY_SECRET_ARN", "TAXJAR_API_KEY")
		require.NoError(t, err)
		assert.Equal(t, "env-key", value)
	})

	t.Run("Skips Secrets Manager without ARN", func(t *testing.T) {
		t.Setenv("TAXJAR_API_KEY_SECRET_ARN", "")
		t.Setenv("TAXJAR_API_KEY", "env-key")
		fake := &fakeSecrets{}

		value, err := NewSecretsManagerClientWithAPI(fake).GetSecretString(context.Background(), "TAXJAR_API_KEY_SECRET_ARN", "TAXJAR_API_KEY")
		require.NoError(t, err)
		assert.Equal(t, "env-key", value)
		assert.Empty(t, fake.calls)
	})

	t.Run("Errors when nothing is configured", func(t *testing.T) {
		t.Setenv("TAXJAR_API_KEY_SECRET_ARN", "")
		t.Setenv("TAXJAR_API_KEY", "")

		_, err := NewSecretsManagerClientWithAPI(&fakeSecrets{}).GetSecretString(context.Background(), "TAXJAR_API_KEY_SECRET_ARN", "TAXJAR_API_KEY")
		assert.Error(t, err)
	})
}
