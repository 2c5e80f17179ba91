package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/console"
)

func brandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Manage your brands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteBrands, appCtx.screens.BrandsList)
		},
	}
	cmd.AddCommand(brandCreateCmd())
	return cmd
}

func brandCreateCmd() *cobra.Command {
	var brand api.Brand

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteBrands, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.BrandCreate(ctx, brand)
			})
		},
	}

	cmd.Flags().StringVar(&brand.Name, "name", "", "brand name")
	cmd.Flags().StringVar(&brand.Logo, "logo", "", "logo URL")
	cmd.Flags().StringVar(&brand.Description, "description", "", "description")
	cmd.Flags().BoolVar(&brand.IsFeatured, "featured", false, "featured brand")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("logo")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
