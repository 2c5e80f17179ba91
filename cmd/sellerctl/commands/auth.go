package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/console"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in as a seller",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteLogin, appCtx.screens.Login)
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.screens.Logout(cmd.Context())
		},
	}
}

func registerCmd() *cobra.Command {
	var registration api.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new seller account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.guard.Run(cmd.Context(), console.RouteRegister, func(ctx context.Context, _ console.SessionContext) error {
				return appCtx.screens.Register(ctx, registration)
			})
		},
	}

	cmd.Flags().StringVar(&registration.Name, "name", "", "full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "email address")
	cmd.Flags().StringVar(&registration.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&registration.Password, "password", "", "password")
	cmd.Flags().StringVar(&registration.BusinessName, "business-name", "", "business name")
	cmd.Flags().StringVar(&registration.BusinessType, "business-type", "", "business type")
	cmd.Flags().StringVar(&registration.GSTNumber, "gst", "", "GST number")
	cmd.Flags().StringVar(&registration.PANNumber, "pan", "", "PAN number")
	cmd.Flags().StringVar(&registration.Address, "address", "", "street address")
	cmd.Flags().StringVar(&registration.City, "city", "", "city")
	cmd.Flags().StringVar(&registration.State, "state", "", "state")
	cmd.Flags().StringVar(&registration.Country, "country", "", "country")
	cmd.Flags().StringVar(&registration.Pincode, "pincode", "", "pincode")
	cmd.Flags().StringVar(&registration.BankAccountNumber, "bank-account", "", "bank account number")
	cmd.Flags().StringVar(&registration.BankName, "bank-name", "", "bank name")
	cmd.Flags().StringVar(&registration.IFSCCode, "ifsc", "", "IFSC code")
	cmd.Flags().StringVar(&registration.UPIID, "upi", "", "UPI id")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("business-name")

	return cmd
}
