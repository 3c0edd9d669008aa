package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/taxjar-go/internal/constants"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		constants.EnvAPIKey,
		constants.EnvAPIKeySecretARN,
		constants.EnvAPIURL,
		constants.EnvAPIVersion,
		constants.EnvTimeout,
		constants.EnvLogLevel,
		constants.EnvStage,
	} {
		t.Setenv(key, "")
	}
}

func writeDotEnv(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(contents), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, constants.DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, constants.DevEnvironment, cfg.Stage)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvAPIKey, "  env-key ")
	t.Setenv(constants.EnvAPIURL, constants.SandboxAPIURL)
	t.Setenv(constants.EnvAPIVersion, "2022-01-24")
	t.Setenv(constants.EnvTimeout, "5s")
	t.Setenv(constants.EnvStage, constants.ProdEnvironment)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, constants.SandboxAPIURL, cfg.APIURL)
	assert.Equal(t, "2022-01-24", cfg.APIVersion)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, constants.ProdEnvironment, cfg.Stage)
}

func TestLoad_FromDotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := writeDotEnv(t, "TAXJAR_API_KEY=file-key\nTAXJAR_TIMEOUT=10s\nLOG_LEVEL=debug\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvAPIKey, "env-key")
	dir := writeDotEnv(t, "TAXJAR_API_KEY=file-key\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(constants.EnvTimeout, "soon")

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_MalformedDotEnv(t *testing.T) {
	clearEnv(t)
	dir := writeDotEnv(t, "TAXJAR_API_KEY=\"unterminated\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}
