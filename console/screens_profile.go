package console

import (
	"context"
	"fmt"
)

// Profile renders the seller's full profile, fetched fresh from the backend
// rather than from the cached session copy.
func (s *Screens) Profile(ctx context.Context, _ SessionContext) error {
	profile, err := s.client.OwnProfile(ctx)
	if err != nil {
		return s.presentError("load your profile", err)
	}

	verified := "not verified"
	if profile.IsVerified {
		verified = "verified"
	}

	fmt.Fprintf(s.out, "== Seller Profile ==\n")
	fmt.Fprintf(s.out, "Name:       %s\n", profile.Name)
	fmt.Fprintf(s.out, "Email:      %s\n", profile.Email)
	fmt.Fprintf(s.out, "Phone:      %s\n", profile.Phone)
	fmt.Fprintf(s.out, "Business:   %s (%s)\n", profile.BusinessName, profile.BusinessType)
	fmt.Fprintf(s.out, "Status:     %s, %s, KYC: %s\n", profile.Status, verified, profile.KYCStatus)
	fmt.Fprintf(s.out, "GST:        %s\n", profile.GSTNumber)
	fmt.Fprintf(s.out, "PAN:        %s\n", profile.PANNumber)
	fmt.Fprintf(s.out, "Address:    %s, %s, %s, %s %s\n", profile.Address, profile.City, profile.State, profile.Country, profile.Pincode)
	fmt.Fprintf(s.out, "Bank:       %s, account %s, IFSC %s\n", profile.BankName, profile.BankAccountNumber, profile.IFSCCode)
	fmt.Fprintf(s.out, "UPI:        %s\n", profile.UPIID)
	return nil
}
