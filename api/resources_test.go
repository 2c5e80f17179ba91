package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketdesk/sellerctl/api"
)

func TestProductsBySellerHitsScopedPath(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/seller/products/seller/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]api.Product{{ID: 1, Name: "Widget", Price: 9.99, Stock: 3}})
	}))
	fixture.loginAs(t, testToken)

	products, err := fixture.client.ProductsBySeller(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Widget", products[0].Name)
}

func TestUpdateOrderItemStatusSendsStatusBody(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/order/update/orderitem/12", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Shipped", body["status"])
	}))
	fixture.loginAs(t, testToken)

	require.NoError(t, fixture.client.UpdateOrderItemStatus(context.Background(), 12, "Shipped"))
}

func TestCreateBrandSendsSingleElementBatch(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var batch []api.Brand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&batch))
		require.Len(t, batch, 1)
		require.Equal(t, "Acme Basics", batch[0].Name)
	}))
	fixture.loginAs(t, testToken)

	require.NoError(t, fixture.client.CreateBrand(context.Background(), api.Brand{Name: "Acme Basics"}))
}

func TestReturnsBySellerUnwrapsEnvelope(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/return/sellerid/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"returnItems":[{"id":3,"userId":9,"status":"Requested"}]}`))
	}))
	fixture.loginAs(t, testToken)

	returns, err := fixture.client.ReturnsBySeller(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, returns, 1)
	require.Equal(t, int64(9), returns[0].UserID)
}

func TestComplaintsBySellerSplitsDirections(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"complaintOnUs":[{"id":1,"complaintType":"Quality"}],"complaintByUs":[]}`))
	}))
	fixture.loginAs(t, testToken)

	list, err := fixture.client.ComplaintsBySeller(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, list.OnUs, 1)
	require.Empty(t, list.ByUs)
}

func TestDashboardStatsSortsDailySales(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"TotalSales": 10,
			"orderStatusCount": [{"status":"Pending","count":4}],
			"monthlyStats": [
				{"date":"2025-03-02","totalSold":"5"},
				{"date":"2025-03-01","totalSold":"2"}
			]
		}`))
	}))
	fixture.loginAs(t, testToken)

	stats, err := fixture.client.DashboardStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(10), stats.TotalSales)
	require.Equal(t, int64(4), stats.PendingOrders())
	require.Equal(t, "2025-03-01", stats.MonthlyStats[0].Date)
	require.Equal(t, "2025-03-02", stats.MonthlyStats[1].Date)
}
