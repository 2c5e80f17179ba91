package api

import (
	"context"
	"net/http"
	"sort"
)

// StatusCount is the number of orders currently in one status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlyStat is one day's sales volume. TotalSold arrives as a string from
// the backend and is kept verbatim.
type MonthlyStat struct {
	Date      string `json:"date"`
	TotalSold string `json:"totalSold"`
}

// DashboardStats is the seller dashboard summary. Field casing follows the
// backend, which mixes styles.
type DashboardStats struct {
	TotalSales       int64         `json:"TotalSales"`
	TotalRevenue     float64       `json:"TotalRevenue"`
	TodayTotalOrder  float64       `json:"TodayTotalOrder"`
	TotalProducts    int64         `json:"TotalProducts"`
	CountOfCustomer  int64         `json:"CountOfCustomer"`
	LowStockProducts int64         `json:"LowStockProducts"`
	TotalReturns     int64         `json:"totalReturns"`
	OrderStatusCount []StatusCount `json:"orderStatusCount"`
	MonthlyStats     []MonthlyStat `json:"monthlyStats"`
}

// PendingOrders returns the count of orders still pending.
func (d *DashboardStats) PendingOrders() int64 {
	for _, sc := range d.OrderStatusCount {
		if sc.Status == "Pending" {
			return sc.Count
		}
	}
	return 0
}

// DashboardStats fetches the dashboard summary, with daily stats sorted by
// date ascending.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, dashboardPath, nil, &out); err != nil {
		return nil, err
	}
	sort.Slice(out.MonthlyStats, func(i, j int) bool {
		return out.MonthlyStats[i].Date < out.MonthlyStats[j].Date
	})
	return &out, nil
}
