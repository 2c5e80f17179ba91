package commands

import (
	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/console"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the sales dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteDashboard, appCtx.screens.Dashboard)
		},
	}
}

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your seller profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteProfile, appCtx.screens.Profile)
		},
	}
}
