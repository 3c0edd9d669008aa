package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cyphera/taxjar-go/pkg/taxjar"
)

func addListFlags(cmd *cobra.Command, params *taxjar.ListTransactionsParams) {
	cmd.Flags().StringVar(&params.TransactionDate, "date", "", "transaction date (YYYY/MM/DD)")
	cmd.Flags().StringVar(&params.FromTransactionDate, "from", "", "start of a date range (YYYY/MM/DD)")
	cmd.Flags().StringVar(&params.ToTransactionDate, "to", "", "end of a date range (YYYY/MM/DD)")
	cmd.Flags().StringVar(&params.Provider, "provider", "", "transaction provider, e.g. api")
}

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage order transactions",
	}

	var listParams taxjar.ListTransactionsParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List order ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ListOrders(ctx, listParams)
			})
		},
	}
	addListFlags(list, &listParams)

	show := &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ShowOrder(ctx, args[0])
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.DeleteOrder(ctx, args[0])
			})
		},
	}

	var createFile, updateFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.OrderParams
			if err := loadParams(cmd.InOrStdin(), createFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.CreateOrder(ctx, params)
			})
		},
	}
	addParamsFlag(create, &createFile)

	update := &cobra.Command{
		Use:   "update",
		Short: "Update an order identified by transaction_id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.OrderParams
			if err := loadParams(cmd.InOrStdin(), updateFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.UpdateOrder(ctx, params)
			})
		},
	}
	addParamsFlag(update, &updateFile)

	cmd.AddCommand(list, show, create, update, del)
	return cmd
}

func newRefundsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refunds",
		Short: "Manage refund transactions",
	}

	var listParams taxjar.ListTransactionsParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List refund ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ListRefunds(ctx, listParams)
			})
		},
	}
	addListFlags(list, &listParams)

	show := &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show a refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.ShowRefund(ctx, args[0])
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a refund",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.DeleteRefund(ctx, args[0])
			})
		},
	}

	var createFile, updateFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a refund",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.RefundParams
			if err := loadParams(cmd.InOrStdin(), createFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.CreateRefund(ctx, params)
			})
		},
	}
	addParamsFlag(create, &createFile)

	update := &cobra.Command{
		Use:   "update",
		Short: "Update a refund identified by transaction_id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var params taxjar.RefundParams
			if err := loadParams(cmd.InOrStdin(), updateFile, &params); err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, api taxjar.API) (interface{}, error) {
				return api.UpdateRefund(ctx, params)
			})
		},
	}
	addParamsFlag(update, &updateFile)

	cmd.AddCommand(list, show, create, update, del)
	return cmd
}
