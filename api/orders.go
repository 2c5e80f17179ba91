package api

import (
	"context"
	"fmt"
	"net/http"
)

// Order is the customer order an ordered item belongs to.
type Order struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId,omitempty"`
	Status      string  `json:"status,omitempty"`
	TotalAmount float64 `json:"totalAmount,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// OrderItem is one line of a customer order that involves this seller's
// product.
type OrderItem struct {
	ID        int64    `json:"id"`
	OrderID   int64    `json:"orderId"`
	ProductID int64    `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Status    string   `json:"status"`
	Order     *Order   `json:"order,omitempty"`
	Product   *Product `json:"product,omitempty"`
}

// OrderedItems lists every ordered item involving the authenticated seller.
// The backend scopes the list by the bearer token; no seller id is needed.
func (c *Client) OrderedItems(ctx context.Context) ([]OrderItem, error) {
	var out []OrderItem
	if err := c.do(ctx, http.MethodGet, orderedItemsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OrderItem fetches one ordered item with its order and product attached.
func (c *Client) OrderItem(ctx context.Context, orderItemID int64) (*OrderItem, error) {
	var out OrderItem
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(orderItemPathF, orderItemID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderItemStatus moves an ordered item to a new fulfilment status.
func (c *Client) UpdateOrderItemStatus(ctx context.Context, orderItemID int64, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf(orderItemUpdatePathF, orderItemID), body, nil)
}
