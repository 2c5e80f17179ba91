package console

import (
	"context"
	"fmt"

	"github.com/marketdesk/sellerctl/api"
)

// ComplaintsList renders complaints in both directions: filed against the
// seller and filed by the seller.
func (s *Screens) ComplaintsList(ctx context.Context, sc SessionContext) error {
	sellerID, err := s.sellerID(sc)
	if err != nil {
		fmt.Fprintln(s.out, "Could not determine your seller id; complaints unavailable.")
		return err
	}

	list, err := s.client.ComplaintsBySeller(ctx, sellerID)
	if err != nil {
		return s.presentError("load complaints", err)
	}

	fmt.Fprintf(s.out, "== Complaints against us (%d) ==\n", len(list.OnUs))
	s.printComplaints(list.OnUs)
	fmt.Fprintf(s.out, "== Complaints by us (%d) ==\n", len(list.ByUs))
	s.printComplaints(list.ByUs)
	return nil
}

func (s *Screens) printComplaints(complaints []api.Complaint) {
	if len(complaints) == 0 {
		fmt.Fprintln(s.out, "  none")
		return
	}
	for _, c := range complaints {
		fmt.Fprintf(s.out, "%6d  %-15s  %-10s  %-12s  %s\n", c.ID, c.ComplaintType, c.Priority, c.Status, c.Description)
	}
}

// ComplaintCreate files a new complaint from the seller.
func (s *Screens) ComplaintCreate(ctx context.Context, complaint api.ComplaintCreate) error {
	if err := s.client.CreateComplaint(ctx, complaint); err != nil {
		return s.presentError("create the complaint", err)
	}
	fmt.Fprintln(s.out, "Complaint created.")
	return nil
}

// ComplaintUpdateStatus moves a complaint to a new status.
func (s *Screens) ComplaintUpdateStatus(ctx context.Context, complaintID int64, status string) error {
	if err := s.client.UpdateComplaintStatus(ctx, complaintID, status); err != nil {
		return s.presentError("update the complaint", err)
	}
	fmt.Fprintf(s.out, "Complaint %d moved to %q.\n", complaintID, status)
	return nil
}
