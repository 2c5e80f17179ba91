package api

import (
	"context"
	"fmt"
	"net/http"
)

// Complaint is a dispute raised by or against the seller.
type Complaint struct {
	ID            int64  `json:"id"`
	ComplaintType string `json:"complaintType"`
	Description   string `json:"description,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Status        string `json:"status,omitempty"`
	OrderID       int64  `json:"orderId,omitempty"`
	ProductID     int64  `json:"productId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// ComplaintList splits complaints by direction: raised against the seller
// versus raised by the seller.
type ComplaintList struct {
	OnUs []Complaint `json:"complaintOnUs"`
	ByUs []Complaint `json:"complaintByUs"`
}

// ComplaintCreate is the body for a seller-raised complaint.
type ComplaintCreate struct {
	OrderID       int64  `json:"orderId,omitempty"`
	ComplaintType string `json:"complaintType"`
	Description   string `json:"description"`
	Priority      string `json:"priority,omitempty"`
}

// SellerToUserComplaint is a complaint raised from a return, targeting the
// customer who opened it.
type SellerToUserComplaint struct {
	RaisedBySellerID int64  `json:"raisedBySellerId"`
	AgainstUserID    int64  `json:"againstUserId"`
	OrderID          int64  `json:"orderId"`
	ProductID        int64  `json:"productId"`
	ComplaintType    string `json:"complaintType"`
	Description      string `json:"description"`
}

// ComplaintsBySeller lists complaints involving sellerID, in both directions.
func (c *Client) ComplaintsBySeller(ctx context.Context, sellerID string) (*ComplaintList, error) {
	var out ComplaintList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(complaintsBySellerPathF, sellerID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateComplaint raises a new complaint from the seller.
func (c *Client) CreateComplaint(ctx context.Context, complaint ComplaintCreate) error {
	return c.do(ctx, http.MethodPost, complaintCreatePath, complaint, nil)
}

// RaiseComplaintAgainstUser files a complaint against a customer over a
// return.
func (c *Client) RaiseComplaintAgainstUser(ctx context.Context, complaint SellerToUserComplaint) error {
	return c.do(ctx, http.MethodPost, complaintSellerToUserPath, complaint, nil)
}

// UpdateComplaintStatus moves a complaint to a new status.
func (c *Client) UpdateComplaintStatus(ctx context.Context, complaintID int64, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf(complaintStatusPathF, complaintID), body, nil)
}
