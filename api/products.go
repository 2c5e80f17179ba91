package api

import (
	"context"
	"fmt"
	"net/http"
)

// Product mirrors the backend product document.
type Product struct {
	ID               int64    `json:"id,omitempty"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug,omitempty"`
	ShortDescription string   `json:"shortDescription,omitempty"`
	Description      string   `json:"description,omitempty"`
	Image            string   `json:"image,omitempty"`
	Price            float64  `json:"price"`
	Stock            int      `json:"stock"`
	SKU              string   `json:"sku,omitempty"`
	Category         string   `json:"category,omitempty"`
	Subcategory      string   `json:"subcategory,omitempty"`
	IsAvailable      bool     `json:"isAvailable"`
	IsFeatured       bool     `json:"isFeatured"`
	Tagline          []string `json:"tagline,omitempty"`
	Discount         float64  `json:"discount"`
	BrandID          int64    `json:"brandId,omitempty"`
	CreatedBy        string   `json:"createdBy,omitempty"`
}

// ProductUpdate carries a partial edit; nil fields are left untouched by the
// backend.
type ProductUpdate struct {
	Name             *string  `json:"name,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Image            *string  `json:"image,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	Stock            *int     `json:"stock,omitempty"`
	Category         *string  `json:"category,omitempty"`
	Subcategory      *string  `json:"subcategory,omitempty"`
	IsAvailable      *bool    `json:"isAvailable,omitempty"`
	IsFeatured       *bool    `json:"isFeatured,omitempty"`
	Tagline          []string `json:"tagline,omitempty"`
	Discount         *float64 `json:"discount,omitempty"`
}

// ProductsBySeller lists the products belonging to sellerID.
func (c *Client) ProductsBySeller(ctx context.Context, sellerID string) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(productsBySellerPathF, sellerID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct adds a new product to the seller's catalogue.
func (c *Client) CreateProduct(ctx context.Context, product Product) error {
	return c.do(ctx, http.MethodPost, productPath, product, nil)
}

// UpdateProduct applies a partial edit to an existing product.
func (c *Client) UpdateProduct(ctx context.Context, productID int64, update ProductUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf(productByIDPathF, productID), update, nil)
}

// DeleteProduct removes a product from the catalogue.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf(productByIDPathF, productID), nil, nil)
}
