package console

import (
	"context"
	"fmt"

	"github.com/marketdesk/sellerctl/api"
)

// ProductsList renders the seller's catalogue, scoped by the seller id
// decoded from the session.
func (s *Screens) ProductsList(ctx context.Context, sc SessionContext) error {
	sellerID, err := s.sellerID(sc)
	if err != nil {
		fmt.Fprintln(s.out, "Could not determine your seller id; product list unavailable.")
		return err
	}

	products, err := s.client.ProductsBySeller(ctx, sellerID)
	if err != nil {
		return s.presentError("load products", err)
	}

	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products yet.")
		return nil
	}

	fmt.Fprintf(s.out, "== Products (%d) ==\n", len(products))
	for _, p := range products {
		availability := "available"
		if !p.IsAvailable {
			availability = "unavailable"
		}
		fmt.Fprintf(s.out, "%6d  %-30s  %10.2f  stock %4d  %s\n", p.ID, p.Name, p.Price, p.Stock, availability)
	}
	return nil
}

// ProductAdd creates a new product in the catalogue.
func (s *Screens) ProductAdd(ctx context.Context, sc SessionContext, product api.Product) error {
	if product.CreatedBy == "" {
		sellerID, err := s.sellerID(sc)
		if err != nil {
			fmt.Fprintln(s.out, "Could not determine your seller id; product not created.")
			return err
		}
		product.CreatedBy = sellerID
	}

	if err := s.client.CreateProduct(ctx, product); err != nil {
		return s.presentError("create the product", err)
	}
	fmt.Fprintf(s.out, "Product %q created.\n", product.Name)
	return nil
}

// ProductUpdate applies a partial edit to a product.
func (s *Screens) ProductUpdate(ctx context.Context, productID int64, update api.ProductUpdate) error {
	if err := s.client.UpdateProduct(ctx, productID, update); err != nil {
		return s.presentError("update the product", err)
	}
	fmt.Fprintf(s.out, "Product %d updated.\n", productID)
	return nil
}

// ProductDelete removes a product.
func (s *Screens) ProductDelete(ctx context.Context, productID int64) error {
	if err := s.client.DeleteProduct(ctx, productID); err != nil {
		return s.presentError("delete the product", err)
	}
	fmt.Fprintf(s.out, "Product %d deleted.\n", productID)
	return nil
}
