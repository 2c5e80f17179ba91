package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/marketdesk/sellerctl/api"
)

// ReturnsList renders the returns raised against the seller's products.
func (s *Screens) ReturnsList(ctx context.Context, sc SessionContext) error {
	sellerID, err := s.sellerID(sc)
	if err != nil {
		fmt.Fprintln(s.out, "Could not determine your seller id; returns unavailable.")
		return err
	}

	returns, err := s.client.ReturnsBySeller(ctx, sellerID)
	if err != nil {
		return s.presentError("load returns", err)
	}

	if len(returns) == 0 {
		fmt.Fprintln(s.out, "No returns.")
		return nil
	}

	fmt.Fprintf(s.out, "== Returns (%d) ==\n", len(returns))
	for _, r := range returns {
		product := ""
		if r.OrderItem != nil && r.OrderItem.Product != nil {
			product = r.OrderItem.Product.Name
		}
		fmt.Fprintf(s.out, "%6d  %-30s  %-12s  %s\n", r.ID, product, r.Status, r.Reason)
	}
	return nil
}

// ReturnRaiseComplaint files a complaint against the customer behind one of
// the seller's returns.
func (s *Screens) ReturnRaiseComplaint(ctx context.Context, sc SessionContext, returnID int64, complaintType, description string) error {
	sellerID, err := s.sellerID(sc)
	if err != nil {
		fmt.Fprintln(s.out, "Could not determine your seller id; complaint not filed.")
		return err
	}
	sellerIDNum, err := strconv.ParseInt(sellerID, 10, 64)
	if err != nil {
		return errors.Wrap(err, "[Screens.ReturnRaiseComplaint] parse seller id")
	}

	returns, err := s.client.ReturnsBySeller(ctx, sellerID)
	if err != nil {
		return s.presentError("load returns", err)
	}

	var target *api.ReturnItem
	for i := range returns {
		if returns[i].ID == returnID {
			target = &returns[i]
			break
		}
	}
	if target == nil {
		fmt.Fprintf(s.out, "Return %d not found.\n", returnID)
		return errors.Errorf("return %d not found", returnID)
	}
	if target.OrderItem == nil {
		fmt.Fprintf(s.out, "Return %d has no order item attached; cannot file a complaint.\n", returnID)
		return errors.Errorf("return %d missing order item", returnID)
	}

	complaint := api.SellerToUserComplaint{
		RaisedBySellerID: sellerIDNum,
		AgainstUserID:    target.UserID,
		OrderID:          target.OrderItem.OrderID,
		ProductID:        target.OrderItem.ProductID,
		ComplaintType:    complaintType,
		Description:      description,
	}
	if err := s.client.RaiseComplaintAgainstUser(ctx, complaint); err != nil {
		return s.presentError("raise the complaint", err)
	}
	fmt.Fprintln(s.out, "Complaint raised successfully!")
	return nil
}
