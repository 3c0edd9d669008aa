package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cyphera/taxjar-go/pkg/taxjar"
)

type apiCall func(ctx context.Context, api taxjar.API) (interface{}, error)

// run builds the client, performs one call and renders its result.
func (a *app) run(cmd *cobra.Command, call apiCall) error {
	ctx := cmd.Context()
	api, err := a.client(ctx)
	if err != nil {
		return err
	}
	result, err := call(ctx, api)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), a.flags.output, result)
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product tax categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.Categories(ctx)
			})
		},
	}
}

func newRatesCmd(a *app) *cobra.Command {
	var params taxjar.RateParams

	cmd := &cobra.Command{
		Use:   "rates <zip>",
		Short: "Show the sales tax rates for a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.RatesForLocation(ctx, args[0], &params)
			})
		},
	}

	cmd.Flags().StringVar(&params.Country, "country", "", "two-letter ISO country code")
	cmd.Flags().StringVar(&params.State, "state", "", "two-letter state or province code")
	cmd.Flags().StringVar(&params.City, "city", "", "city name")
	cmd.Flags().StringVar(&params.Street, "street", "", "street address")

	return cmd
}

func newTaxCmd(a *app) *cobra.Command {
	var paramsFile string

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Calculate sales tax for an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.TaxParams
			if err := loadParams(cmd.InOrStdin(), paramsFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.TaxForOrder(ctx, params)
			})
		},
	}

	addParamsFlag(cmd, &paramsFile)
	return cmd
}

func newNexusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nexus",
		Short: "List the account's nexus regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.NexusRegions(ctx)
			})
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	var params taxjar.ValidationParams

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a VAT identification number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.Validate(ctx, params)
			})
		},
	}

	cmd.Flags().StringVar(&params.VAT, "vat", "", "VAT identification number")
	_ = cmd.MarkFlagRequired("vat")
	return cmd
}

func newValidateAddressCmd(a *app) *cobra.Command {
	var paramsFile string

	cmd := &cobra.Command{
		Use:   "validate-address",
		Short: "Validate a US address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.AddressParams
			if err := loadParams(cmd.InOrStdin(), paramsFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ValidateAddress(ctx, params)
			})
		},
	}

	addParamsFlag(cmd, &paramsFile)
	return cmd
}

func newSummaryRatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary-rates",
		Short: "List minimum and average rates per region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.SummaryRates(ctx)
			})
		},
	}
}

func addParamsFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "params", "p", "", "YAML or JSON file with the request parameters (- for stdin)")
}
