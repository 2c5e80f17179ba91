package api

import (
	"context"
	"fmt"
	"net/http"
)

// ReturnItem is a customer-initiated return of one ordered item.
type ReturnItem struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Reason    string     `json:"reason,omitempty"`
	Status    string     `json:"status,omitempty"`
	CreatedAt string     `json:"createdAt,omitempty"`
	OrderItem *OrderItem `json:"orderItem,omitempty"`
}

// ReturnsBySeller lists the returns raised against sellerID's products.
func (c *Client) ReturnsBySeller(ctx context.Context, sellerID string) ([]ReturnItem, error) {
	var out struct {
		ReturnItems []ReturnItem `json:"returnItems"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(returnsBySellerPathF, sellerID), nil, &out); err != nil {
		return nil, err
	}
	return out.ReturnItems, nil
}
