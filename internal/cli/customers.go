package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cyphera/taxjar-go/pkg/taxjar"
)

func newCustomersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage exempt customers",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List customer ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ListCustomers(ctx)
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <customer-id>",
		Short: "Show a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ShowCustomer(ctx, args[0])
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <customer-id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.DeleteCustomer(ctx, args[0])
			})
		},
	}

	var createFile, updateFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.CustomerParams
			if err := loadParams(cmd.InOrStdin(), createFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.CreateCustomer(ctx, params)
			})
		},
	}
	addParamsFlag(create, &createFile)

	update := &cobra.Command{
		Use:   "update",
		Short: "Update a customer identified by customer_id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.CustomerParams
			if err := loadParams(cmd.InOrStdin(), updateFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.UpdateCustomer(ctx, params)
			})
		},
	}
	addParamsFlag(update, &updateFile)

	cmd.AddCommand(list, show, create, update, del)
	return cmd
}
