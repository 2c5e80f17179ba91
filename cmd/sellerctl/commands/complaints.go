package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/console"
)

func complaintsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complaints",
		Short: "View and manage complaints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteComplaints, appCtx.screens.ComplaintsList)
		},
	}
	cmd.AddCommand(complaintCreateCmd(), complaintUpdateCmd())
	return cmd
}

func complaintCreateCmd() *cobra.Command {
	var complaint api.ComplaintCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "File a new complaint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteComplaints, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.ComplaintCreate(ctx, complaint)
			})
		},
	}

	cmd.Flags().Int64Var(&complaint.OrderID, "order", 0, "related order id")
	cmd.Flags().StringVar(&complaint.ComplaintType, "type", "", "complaint type")
	cmd.Flags().StringVar(&complaint.Description, "description", "", "description")
	cmd.Flags().StringVar(&complaint.Priority, "priority", "Medium", "priority (Low, Medium, High)")

	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func complaintUpdateCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "update [complaint-id]",
		Short: "Move a complaint to a new status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			complaintID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return appCtx.guard.Run(cmd.Context(), console.RouteComplaints, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.ComplaintUpdateStatus(ctx, complaintID, status)
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "new status (e.g. Resolved)")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}
