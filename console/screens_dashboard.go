package console

import (
	"context"
	"fmt"
)

// Dashboard renders the sales summary.
func (s *Screens) Dashboard(ctx context.Context, sc SessionContext) error {
	stats, err := s.client.DashboardStats(ctx)
	if err != nil {
		return s.presentError("load the dashboard", err)
	}

	fmt.Fprintf(s.out, "== Dashboard - %s ==\n", sc.Profile.BusinessName)
	fmt.Fprintf(s.out, "Total sales:      %d\n", stats.TotalSales)
	fmt.Fprintf(s.out, "Total revenue:    %.2f\n", stats.TotalRevenue)
	fmt.Fprintf(s.out, "Today's orders:   %.2f\n", stats.TodayTotalOrder)
	fmt.Fprintf(s.out, "Active products:  %d\n", stats.TotalProducts)
	fmt.Fprintf(s.out, "Customers:        %d\n", stats.CountOfCustomer)
	fmt.Fprintf(s.out, "Pending orders:   %d\n", stats.PendingOrders())
	fmt.Fprintf(s.out, "Low stock items:  %d\n", stats.LowStockProducts)
	fmt.Fprintf(s.out, "Returns:          %d\n", stats.TotalReturns)

	if len(stats.OrderStatusCount) > 0 {
		fmt.Fprintln(s.out, "\nOrders by status:")
		for _, sc := range stats.OrderStatusCount {
			fmt.Fprintf(s.out, "  %-12s %d\n", sc.Status, sc.Count)
		}
	}

	if len(stats.MonthlyStats) > 0 {
		fmt.Fprintln(s.out, "\nDaily sales:")
		for _, stat := range stats.MonthlyStats {
			fmt.Fprintf(s.out, "  %-12s %s\n", stat.Date, stat.TotalSold)
		}
	}
	return nil
}
