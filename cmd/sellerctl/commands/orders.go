package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/console"
)

func ordersCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List and manage ordered items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteOrders, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.OrdersList(ctx, status)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "All", "filter by status")

	cmd.AddCommand(orderShowCmd(), orderUpdateCmd())
	return cmd
}

func orderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [order-item-id]",
		Short: "Show one ordered item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderItemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return appCtx.guard.Run(cmd.Context(), console.RouteOrders, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.OrderShow(ctx, orderItemID)
			})
		},
	}
}

func orderUpdateCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "update [order-item-id]",
		Short: "Move an ordered item to a new status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderItemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return appCtx.guard.Run(cmd.Context(), console.RouteOrders, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.OrderUpdateStatus(ctx, orderItemID, status)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "new status (e.g. Shipped, Delivered)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
