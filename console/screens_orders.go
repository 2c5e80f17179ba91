package console

import (
	"context"
	"fmt"
)

// OrdersList renders the seller's ordered items, optionally filtered by
// status ("All" or empty shows everything).
func (s *Screens) OrdersList(ctx context.Context, statusFilter string) error {
	items, err := s.client.OrderedItems(ctx)
	if err != nil {
		return s.presentError("load orders", err)
	}

	shown := 0
	for _, item := range items {
		if statusFilter != "" && statusFilter != "All" && item.Status != statusFilter {
			continue
		}
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Fprintf(s.out, "%6d  order %-6d  %-30s  x%-3d  %10.2f  %s\n",
			item.ID, item.OrderID, name, item.Quantity, item.Price, item.Status)
		shown++
	}

	if shown == 0 {
		fmt.Fprintln(s.out, "No orders found.")
	}
	return nil
}

// OrderShow renders one ordered item in full.
func (s *Screens) OrderShow(ctx context.Context, orderItemID int64) error {
	item, err := s.client.OrderItem(ctx, orderItemID)
	if err != nil {
		return s.presentError("load the order item", err)
	}

	fmt.Fprintf(s.out, "== Order item %d ==\n", item.ID)
	fmt.Fprintf(s.out, "Order:    %d\n", item.OrderID)
	if item.Product != nil {
		fmt.Fprintf(s.out, "Product:  %s (id %d)\n", item.Product.Name, item.ProductID)
	}
	fmt.Fprintf(s.out, "Quantity: %d\n", item.Quantity)
	fmt.Fprintf(s.out, "Price:    %.2f\n", item.Price)
	fmt.Fprintf(s.out, "Status:   %s\n", item.Status)
	if item.Order != nil {
		fmt.Fprintf(s.out, "Order status: %s, total %.2f\n", item.Order.Status, item.Order.TotalAmount)
	}
	return nil
}

// OrderUpdateStatus moves an ordered item to a new fulfilment status.
func (s *Screens) OrderUpdateStatus(ctx context.Context, orderItemID int64, status string) error {
	if err := s.client.UpdateOrderItemStatus(ctx, orderItemID, status); err != nil {
		return s.presentError("update the order status", err)
	}
	fmt.Fprintf(s.out, "Order item %d moved to %q.\n", orderItemID, status)
	return nil
}
