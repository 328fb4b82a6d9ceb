package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/SergeyBogomolovv/food-donation-service/internal/config"
	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/SergeyBogomolovv/food-donation-service/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, h http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.New(logger, config.Platform{BaseURL: srv.URL + "/api/", Timeout: time.Second})
}

func TestClient_GetDonation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/donations/42", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"id": 42,
			"donorName": "Bakery",
			"foodType": "Bread",
			"quantity": 12.5,
			"unit": "kg",
			"expiryTime": "2026-05-01T18:30:00",
			"pickupLocation": "Main st 1",
			"status": "PENDING",
			"createdAt": "2026-04-30T08:00:00.123"
		}`)
	})

	ctx := gateway.WithToken(context.Background(), "secret")
	d, err := client.GetDonation(ctx, "42")
	require.NoError(t, err)

	assert.Equal(t, "42", d.ID)
	assert.Equal(t, "Bread", d.FoodType)
	assert.True(t, d.Quantity.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, entities.UnitKg, d.Unit)
	assert.Equal(t, time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC), d.ExpiryTime)
	assert.Equal(t, entities.DonationPending, d.Status)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		io.WriteString(w, `[{"id":"a1","quantity":"3","expiryTime":[2026,5,1,10,0],"status":"PENDING"}]`)
	})

	list, err := client.ListAvailableDonations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), list[0].ExpiryTime)
}

func TestClient_CreateOrder(t *testing.T) {
	var body map[string]any

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		io.WriteString(w, `{"orderId":"ORD-1","qrCode":"{\"orderId\":\"ORD-1\"}","status":"success","message":"Order placed successfully"}`)
	})

	draft := entities.OrderDraft{
		NGOID: "7",
		Items: []entities.CartLine{{
			DonationID:        "42",
			FoodType:          "Bread",
			Unit:              entities.UnitKg,
			Available:         decimal.RequireFromString("12.5"),
			RequestedQuantity: 3,
		}},
		Delivery: entities.DeliveryDetails{
			DeliveryLocation: "Shelter",
			DeliveryDate:     "2026-05-01",
			DeliveryTime:     "10:00",
		},
		OrderDate: time.Date(2026, 4, 30, 9, 0, 0, 0, time.UTC),
	}

	receipt, err := client.CreateOrder(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", receipt.OrderID)
	assert.Equal(t, `{"orderId":"ORD-1"}`, receipt.QRCode)

	assert.Equal(t, float64(7), body["ngoId"])
	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(42), item["id"])
	assert.Equal(t, float64(3), item["requestedQuantity"])
	assert.Equal(t, 12.5, item["quantity"])
	details := body["deliveryDetails"].(map[string]any)
	assert.Equal(t, "Shelter", details["deliveryLocation"])
	assert.Equal(t, "2026-04-30T09:00:00Z", body["orderDate"])
}

func TestClient_CreateOrderEmptyReceipt(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"success"}`)
	})

	receipt, err := client.CreateOrder(context.Background(), entities.OrderDraft{NGOID: "7"})
	require.NoError(t, err)
	assert.Empty(t, receipt.OrderID)
	assert.Empty(t, receipt.QRCode)
}

func TestClient_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantIs      error
	}{
		{
			name:        "json message",
			status:      http.StatusBadRequest,
			body:        `{"message":"Error: Donor not found!"}`,
			wantMessage: "Error: Donor not found!",
		},
		{
			name:        "plain text",
			status:      http.StatusBadRequest,
			body:        "Only NGOs can place orders",
			wantMessage: "Only NGOs can place orders",
		},
		{
			name:        "empty body",
			status:      http.StatusNotFound,
			wantMessage: "Not Found",
			wantIs:      entities.ErrNotFound,
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"error":"token expired"}`,
			wantMessage: "token expired",
			wantIs:      entities.ErrUnauthorized,
		},
		{
			name:        "malformed success body",
			status:      http.StatusOK,
			body:        `{"id": [}`,
			wantMessage: "malformed response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			})

			_, err := client.GetDonation(context.Background(), "1")

			var se *entities.ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.status, se.StatusCode)
			assert.Contains(t, se.Message, tc.wantMessage)
			assert.Equal(t, "GetDonation", se.Op)
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
		})
	}
}

func TestClient_LongErrorMessage(t *testing.T) {
	body := "x" + strings.Repeat("я", 400)
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, body)
	})

	_, err := client.GetDonation(context.Background(), "1")

	var se *entities.ServerError
	require.ErrorAs(t, err, &se)
	assert.True(t, utf8.ValidString(se.Message))
	assert.LessOrEqual(t, len(se.Message), 512)
	assert.Equal(t, 511, len(se.Message))
	assert.True(t, strings.HasPrefix(body, se.Message))
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := gateway.New(logger, config.Platform{BaseURL: srv.URL, Timeout: time.Second})

	_, err := client.ListOrders(context.Background())

	var ne *entities.NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "ListOrders", ne.Op)
}

func TestClient_Login(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ngo", req["username"])
		assert.Equal(t, "pass", req["password"])

		io.WriteString(w, `{"message":"Login successful!","user":{"id":3,"name":"Food Bank","role":"NGO","points":10,"token":"t-1"}}`)
	})

	res, err := client.Login(context.Background(), "ngo", "pass")
	require.NoError(t, err)
	assert.Equal(t, "3", res.User.ID)
	assert.Equal(t, entities.RoleNGO, res.User.Role)
	assert.Equal(t, 10, res.User.Points)
	assert.Equal(t, "t-1", res.Token)
}

func TestClient_DashboardStats(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/stats/dashboard", r.URL.Path)
		io.WriteString(w, `{"totalDonors":12,"totalNgos":3,"totalVolunteers":7,"totalDonations":40,
			"pendingDonations":5,"deliveredDonations":30,"totalFoodSaved":512.5,"totalRequests":9,
			"openRequests":2,"fulfilledRequests":7,"totalPeopleServed":210}`)
	})

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalNGOs)
	assert.Equal(t, int64(30), stats.DeliveredDonations)
	assert.Equal(t, 512.5, stats.TotalFoodSaved)
	assert.Equal(t, int64(210), stats.TotalPeopleServed)
}

func TestClient_ListNGOOrders(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/ngo/3", r.URL.Path)
		io.WriteString(w, `[{
			"id": 9,
			"orderId": "ORD-1700000000000",
			"deliveryLocation": "Shelter",
			"deliveryDate": "2026-05-01T10:00:00",
			"deliveryTime": "10:00",
			"status": "IN_TRANSIT",
			"orderItems": [{"requestedQuantity": 2, "unit": "kg", "donation": {"id": 42, "foodType": "Rice", "pickupLocation": "Depot"}}]
		}]`)
	})

	orders, err := client.ListNGOOrders(context.Background(), "3")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "ORD-1700000000000", o.ID)
	assert.Equal(t, "3", o.NGOID)
	assert.Equal(t, entities.OrderInTransit, o.Status)
	assert.Equal(t, "2026-05-01", o.Delivery.DeliveryDate)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "42", o.Items[0].DonationID)
	assert.Equal(t, 2, o.Items[0].RequestedQuantity)
	assert.Equal(t, "Depot", o.Items[0].PickupLocation)
}

func TestWithToken(t *testing.T) {
	ctx := gateway.WithToken(context.Background(), "abc")
	assert.Equal(t, "abc", gateway.TokenFromContext(ctx))
	assert.Empty(t, gateway.TokenFromContext(context.Background()))
}
