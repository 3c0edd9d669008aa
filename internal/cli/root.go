// Package cli implements the taxjar command line tool.
package cli

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cyphera/taxjar-go/internal/client/aws"
	"github.com/cyphera/taxjar-go/internal/config"
	"github.com/cyphera/taxjar-go/internal/constants"
	"github.com/cyphera/taxjar-go/internal/logger"
	"github.com/cyphera/taxjar-go/pkg/taxjar"
)

// clientFactory builds the API client once flags have been parsed.
type clientFactory func(ctx context.Context, g *globalFlags) (taxjar.API, error)

type globalFlags struct {
	apiKey   string
	apiURL   string
	sandbox  bool
	timeout  time.Duration
	output   string
	logLevel string

	cfg config.Config
}

type app struct {
	flags     globalFlags
	newClient clientFactory
}

// Execute runs the root command against the real TaxJar API.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return newRootCmd(defaultClientFactory).Execute()
}

// NewRootCmdForTest returns a root command that runs every call against api.
// A nil api builds real clients, which tests point at a sandbox with --api-url.
func NewRootCmdForTest(api taxjar.API) *cobra.Command {
	if api == nil {
		return newRootCmd(defaultClientFactory)
	}
	return newRootCmd(func(context.Context, *globalFlags) (taxjar.API, error) {
		return api, nil
	})
}

func newRootCmd(factory clientFactory) *cobra.Command {
	a := &app{newClient: factory}

	cmd := &cobra.Command{
		Use:           "taxjar",
		Short:         "Command line client for the TaxJar sales tax API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.flags.apiKey, "api-key", "", "API token (defaults to TAXJAR_API_KEY or the secret named by TAXJAR_API_KEY_SECRET_ARN)")
	f.StringVar(&a.flags.apiURL, "api-url", "", "base URL of the API (defaults to TAXJAR_API_URL)")
	f.BoolVar(&a.flags.sandbox, "sandbox", false, "use the TaxJar sandbox environment")
	f.DurationVar(&a.flags.timeout, "timeout", 0, "per-request timeout (defaults to TAXJAR_TIMEOUT)")
	f.StringVarP(&a.flags.output, "output", "o", outputJSON, "output format: json, table or dump")
	f.StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newCategoriesCmd(a))
	cmd.AddCommand(newRatesCmd(a))
	cmd.AddCommand(newTaxCmd(a))
	cmd.AddCommand(newOrdersCmd(a))
	cmd.AddCommand(newRefundsCmd(a))
	cmd.AddCommand(newCustomersCmd(a))
	cmd.AddCommand(newNexusCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newValidateAddressCmd(a))
	cmd.AddCommand(newSummaryRatesCmd(a))
	cmd.AddCommand(newSandboxCmd(a))

	return cmd
}

func (a *app) setup() error {
	switch a.flags.output {
	case outputJSON, outputTable, outputDump:
	default:
		return errors.Errorf("unknown output format %q", a.flags.output)
	}

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	a.flags.cfg = cfg

	level := a.flags.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       level,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == constants.ProdEnvironment,
		EnableColor: cfg.Stage != constants.ProdEnvironment,
	})
	return nil
}

func (a *app) client(ctx context.Context) (taxjar.API, error) {
	return a.newClient(ctx, &a.flags)
}

func defaultClientFactory(ctx context.Context, g *globalFlags) (taxjar.API, error) {
	apiKey := strings.TrimSpace(g.apiKey)
	if apiKey == "" && g.cfg.APIKeySecretARN != "" {
		logger.Debug("Resolving API key from Secrets Manager")
		secrets, err := aws.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, err
		}
		apiKey, err = secrets.GetSecretString(ctx, constants.EnvAPIKeySecretARN, constants.EnvAPIKey)
		if err != nil {
			return nil, err
		}
	}

	opts := []taxjar.Option{taxjar.WithLogger(logger.Log)}
	switch {
	case g.apiURL != "":
		opts = append(opts, taxjar.WithBaseURL(g.apiURL))
	case g.sandbox:
		opts = append(opts, taxjar.WithBaseURL(taxjar.SandboxAPIURL))
	}
	if g.timeout > 0 {
		opts = append(opts, taxjar.WithTimeout(g.timeout))
	} else if g.cfg.Timeout > 0 {
		opts = append(opts, taxjar.WithTimeout(g.cfg.Timeout))
	}
	if g.cfg.APIVersion != "" {
		opts = append(opts, taxjar.WithAPIVersion(g.cfg.APIVersion))
	}

	client, err := taxjar.NewClient(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
