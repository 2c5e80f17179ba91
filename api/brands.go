package api

import (
	"context"
	"fmt"
	"net/http"
)

// Brand mirrors the backend brand document.
type Brand struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
	IsFeatured  bool   `json:"isFeatured"`
}

// BrandsBySeller lists the brands belonging to sellerID.
func (c *Client) BrandsBySeller(ctx context.Context, sellerID string) ([]Brand, error) {
	var out []Brand
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(brandsBySellerPathF, sellerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBrand registers a new brand. The endpoint accepts a batch, so the
// single brand is sent as a one-element list.
func (c *Client) CreateBrand(ctx context.Context, brand Brand) error {
	return c.do(ctx, http.MethodPost, brandsPath, []Brand{brand}, nil)
}
