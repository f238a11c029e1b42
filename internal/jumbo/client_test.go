package jumbo_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/jumbo/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, api *testutils.APIServer) *jumbo.Client {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	session := jumbo.NewSession("user@example.com", "secret", server.Client(), slog.Default())
	session.BaseURL = server.URL
	client := jumbo.NewClient(session, server.Client(), slog.Default())
	client.BaseURL = server.URL
	return client
}

func TestClient_SyncStore(t *testing.T) {
	client := newTestClient(t, &testutils.APIServer{})
	ctx := context.Background()

	_, ok := client.Store()
	assert.False(t, ok)

	store, err := client.SyncStore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "441", store.ID)
	assert.Equal(t, "33249", store.ComplexNumber)

	synced, ok := client.Store()
	assert.True(t, ok)
	assert.Equal(t, store, synced)
}

func TestClient_GetDeliverySlots(t *testing.T) {
	client := newTestClient(t, &testutils.APIServer{})
	ctx := context.Background()

	// store-scoped call without a synced store
	_, err := client.GetDeliverySlots(ctx)
	assert.ErrorIs(t, err, jumbo.ErrNotConfigured)

	_, err = client.SyncStore(ctx)
	require.NoError(t, err)

	days, err := client.GetDeliverySlots(ctx)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2024-05-16", days[0].Day)
	require.Len(t, days[0].TimeSlots, 2)
	assert.True(t, days[0].TimeSlots[0].Available)
	assert.False(t, days[0].TimeSlots[1].Available)

	date, err := days[0].Date()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-16", date.Format("2006-01-02"))
}

func TestClient_GetPickupSlots(t *testing.T) {
	client := newTestClient(t, &testutils.APIServer{})
	ctx := context.Background()

	_, err := client.SyncStore(ctx)
	require.NoError(t, err)

	days, err := client.GetPickupSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 2)
}

func TestClient_GetOrders(t *testing.T) {
	client := newTestClient(t, &testutils.APIServer{})

	orders, err := client.GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "100001", orders[0].ID)
	assert.Equal(t, "OPEN", orders[0].Status)
	require.NotNil(t, orders[0].Window())
	assert.Equal(t, "17:00 - 19:00", orders[0].Window().Time)
}

func TestClient_Basket(t *testing.T) {
	client := newTestClient(t, &testutils.APIServer{})
	ctx := context.Background()

	basket, err := client.GetBasket(ctx)
	require.NoError(t, err)
	require.Len(t, basket.Items, 1)
	assert.Equal(t, "211761ZK", basket.Items[0].SKU)
	assert.Equal(t, 250, basket.Prices.Total.Amount)

	response, err := client.AddProduct(ctx, "211761ZK")
	require.NoError(t, err)
	assert.NotEmpty(t, response)

	_, err = client.AddProduct(ctx, "")
	var apiErr *jumbo.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClient_AuthFailurePropagates(t *testing.T) {
	client := newTestClient(t, &testutils.APIServer{RejectLogin: true})

	_, err := client.GetOrders(context.Background())
	var authErr *jumbo.AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestOrder_Window(t *testing.T) {
	delivery := &jumbo.OrderWindow{Time: "17:00 - 19:00"}
	pickup := &jumbo.OrderWindow{Time: "09:00 - 09:15"}

	order := jumbo.Order{Type: "homeDelivery", Delivery: delivery, Pickup: pickup}
	assert.Equal(t, delivery, order.Window())

	order.Type = "collection"
	assert.Equal(t, pickup, order.Window())
}
