package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/gateway"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return gateway.New(config.Services{
		PaymentURL:      srv.URL + "/payment/api",
		MerchantURL:     srv.URL + "/merchant/api",
		NotificationURL: srv.URL + "/notification/api",
		Timeout:         2 * time.Second,
	})
}

func TestCreatePayment_SendsJSONAndHeaders(t *testing.T) {
	var received dto.CreatePayment
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment/api/payments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, hasAuth := r.Header["Authorization"]
		assert.False(t, hasAuth)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"paymentId":"p-1","message":"Payment being processed"}`))
	})

	created, err := client.CreatePayment(context.Background(), dto.CreatePayment{
		PayerID:    "M1",
		PayerEmail: "a@acme.com",
		PayeeID:    "M2",
		Amount:     decimal.NewFromInt(50),
		Currency:   "BRL",
	})

	require.NoError(t, err)
	assert.Equal(t, "p-1", created.Identifier())
	assert.Equal(t, "M1", received.PayerID)
	assert.True(t, decimal.NewFromInt(50).Equal(received.Amount))
}

func TestCreatePayment_MissingID(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	created, err := client.CreatePayment(context.Background(), dto.CreatePayment{})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, gateway.ErrMissingPaymentID)
}

func TestAuthorizationHeader_SentWhenConfigured(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	})
	client.AuthToken = "Bearer token"

	merchants, err := client.ListMerchants(context.Background())

	require.NoError(t, err)
	assert.Empty(t, merchants)
}

func TestGetters_UseServiceBaseURLs(t *testing.T) {
	paths := make(chan string, 10)
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		switch r.URL.Path {
		case "/payment/api/payments/p-1":
			_, _ = w.Write([]byte(`{"id":"p-1","payerId":"M1","payeeId":"M2","amount":50,"currency":"BRL","status":"PENDING"}`))
		case "/merchant/api/merchants/m-1/balance":
			_, _ = w.Write([]byte(`{"balance":1000.00}`))
		case "/notification/api/notifications":
			_, _ = w.Write([]byte(`[{"id":"n-1","paymentId":"p-1","subject":"Payment approved"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})
	ctx := context.Background()

	payment, err := client.GetPayment(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, payment.Status)

	balance, err := client.GetMerchantBalance(ctx, "m-1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(balance.Balance))

	events, err := client.GetMerchantEvents(ctx, "m-1")
	require.NoError(t, err)
	assert.Empty(t, events)

	notifications, err := client.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Payment approved", notifications[0].Subject)

	assert.Equal(t, "/payment/api/payments/p-1", <-paths)
	assert.Equal(t, "/merchant/api/merchants/m-1/balance", <-paths)
	assert.Equal(t, "/merchant/api/merchants/m-1/events", <-paths)
	assert.Equal(t, "/notification/api/notifications", <-paths)
}

func TestServerError_CarriesServerMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"MERCHANT_NOT_FOUND","message":"Merchant not found"}`))
	})

	_, err := client.GetMerchant(context.Background(), "missing")

	var serverErr *gateway.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, http.StatusNotFound, serverErr.Status)
	assert.Equal(t, "MERCHANT_NOT_FOUND", serverErr.Code)
	assert.Equal(t, "Merchant not found", gateway.Message(err, "fallback"))
}

func TestServerError_WithoutBodyUsesFallback(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListPayments(context.Background())

	var serverErr *gateway.ServerError
	require.True(t, errors.As(err, &serverErr))
	assert.Equal(t, "fallback", gateway.Message(err, "fallback"))
}

func TestNoResponseError_OnTimeout(t *testing.T) {
	release := make(chan struct{})
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.HTTP.Timeout = 50 * time.Millisecond

	_, err := client.GetPayment(context.Background(), "p-1")

	var noResponse *gateway.NoResponseError
	require.True(t, errors.As(err, &noResponse))
	assert.Equal(t, "fallback", gateway.Message(err, "fallback"))
}

func TestNoResponseError_OnCancelledContext(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetPaymentEvents(ctx, "p-1")

	var noResponse *gateway.NoResponseError
	require.True(t, errors.As(err, &noResponse))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestError_OnMalformedURL(t *testing.T) {
	client := gateway.New(config.Services{PaymentURL: "http://bad host"})

	_, err := client.ListPayments(context.Background())

	var requestErr *gateway.RequestError
	assert.True(t, errors.As(err, &requestErr))
}
