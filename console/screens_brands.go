package console

import (
	"context"
	"fmt"

	"github.com/marketdesk/sellerctl/api"
)

// BrandsList renders the seller's brands.
func (s *Screens) BrandsList(ctx context.Context, sc SessionContext) error {
	sellerID, err := s.sellerID(sc)
	if err != nil {
		fmt.Fprintln(s.out, "Could not determine your seller id; brand list unavailable.")
		return err
	}

	brands, err := s.client.BrandsBySeller(ctx, sellerID)
	if err != nil {
		return s.presentError("load brands", err)
	}

	if len(brands) == 0 {
		fmt.Fprintln(s.out, "No brands yet.")
		return nil
	}

	fmt.Fprintf(s.out, "== Brands (%d) ==\n", len(brands))
	for _, b := range brands {
		featured := ""
		if b.IsFeatured {
			featured = "  [featured]"
		}
		fmt.Fprintf(s.out, "%6d  %-25s  %s%s\n", b.ID, b.Name, b.Description, featured)
	}
	return nil
}

// BrandCreate registers a new brand.
func (s *Screens) BrandCreate(ctx context.Context, brand api.Brand) error {
	if err := s.client.CreateBrand(ctx, brand); err != nil {
		return s.presentError("create the brand", err)
	}
	fmt.Fprintf(s.out, "Brand %q created.\n", brand.Name)
	return nil
}
