// Package config resolves client settings from the environment and an optional
// .env file. It is only consulted while a client is being built.
package config

import (
	"strings"
	"time"

	"github.com/cyphera/taxjar-go/internal/constants"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds all settings the library and the CLI read from the environment.
type Config struct {
	APIKey          string        `mapstructure:"TAXJAR_API_KEY"`
	APIKeySecretARN string        `mapstructure:"TAXJAR_API_KEY_SECRET_ARN"`
	APIURL          string        `mapstructure:"TAXJAR_API_URL"`
	APIVersion      string        `mapstructure:"TAXJAR_API_VERSION"`
	Timeout         time.Duration `mapstructure:"TAXJAR_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	Stage           string        `mapstructure:"STAGE"`
}

// Load reads configuration from environment variables, falling back to an
// optional .env file found in path. Environment always wins over the file.
func Load(path string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(constants.EnvAPIURL, constants.DefaultAPIURL)
	v.SetDefault(constants.EnvTimeout, "30s")
	v.SetDefault(constants.EnvLogLevel, "info")
	v.SetDefault(constants.EnvStage, constants.DevEnvironment)

	for _, key := range []string{
		constants.EnvAPIKey,
		constants.EnvAPIKeySecretARN,
		constants.EnvAPIURL,
		constants.EnvAPIVersion,
		constants.EnvTimeout,
		constants.EnvLogLevel,
		constants.EnvStage,
	} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, errors.Wrap(err, "failed to read .env file")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unable to decode configuration")
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	return cfg, nil
}
