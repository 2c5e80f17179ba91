package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/console"
)

func returnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "returns",
		Short: "List returns against your products",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteReturns, appCtx.screens.ReturnsList)
		},
	}
	cmd.AddCommand(returnComplaintCmd())
	return cmd
}

func returnComplaintCmd() *cobra.Command {
	var complaintType, description string

	cmd := &cobra.Command{
		Use:   "complain [return-id]",
		Short: "Raise a complaint against the customer behind a return",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			returnID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return appCtx.guard.Run(cmd.Context(), console.RouteReturns, func(ctx context.Context, sc console.SessionContext) error {
				return appCtx.screens.ReturnRaiseComplaint(ctx, sc, returnID, complaintType, description)
			})
		},
	}
	cmd.Flags().StringVar(&complaintType, "type", "Fraud", "complaint type")
	cmd.Flags().StringVar(&description, "description", "", "complaint description")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}
