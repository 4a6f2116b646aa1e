package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-dashboard/internal/app"
	"github.com/jeffleon2/draftea-dashboard/internal/cache"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/jeffleon2/draftea-dashboard/internal/monitor"
	"github.com/jeffleon2/draftea-dashboard/internal/service"
	"github.com/jeffleon2/draftea-dashboard/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type manualTicker struct {
	c chan time.Time
}

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()               {}

type fixture struct {
	dashboard *app.Dashboard
	payments  *mocks.MockPaymentAPI
	merchants *mocks.MockMerchantAPI
	store     cache.Store
	ticker    *manualTicker
}

func newFixture(t *testing.T, settleDelay time.Duration) *fixture {
	t.Helper()
	f := &fixture{
		payments:  mocks.NewMockPaymentAPI(t),
		merchants: mocks.NewMockMerchantAPI(t),
		store:     cache.NewMemoryStore(),
		ticker:    &manualTicker{c: make(chan time.Time)},
	}
	poller := service.NewPoller(time.Millisecond, 60)
	poller.NewTicker = func(time.Duration) service.Ticker { return f.ticker }

	f.dashboard = app.NewDashboard(
		service.NewMerchantService(f.merchants, f.store),
		service.NewPaymentService(f.payments, f.store, poller),
		nil,
		monitor.New(),
		settleDelay,
	)
	t.Cleanup(f.dashboard.Close)
	return f
}

func (f *fixture) tick(t *testing.T) {
	t.Helper()
	select {
	case f.ticker.c <- time.Now():
	case <-time.After(2 * time.Second):
		t.Fatal("poll loop did not accept tick")
	}
}

func merchant(id, email string, balance int64) models.Merchant {
	return models.Merchant{ID: id, Name: id, Email: email, Balance: decimal.NewFromInt(balance), Currency: "BRL"}
}

func pendingPayment() *models.Payment {
	return &models.Payment{ID: "pay-1", PayerID: "M1", PayeeID: "M2", PayerEmail: "m1@acme.com", Amount: decimal.NewFromInt(50), Currency: "BRL", Status: models.StatusPending}
}

func approvedPayment() *models.Payment {
	p := pendingPayment()
	p.Status = models.StatusApproved
	return p
}

func seedMerchants(t *testing.T, f *fixture) {
	t.Helper()
	m1 := merchant("M1", "m1@acme.com", 1000)
	state := models.DefaultMerchantState()
	state.Merchant = &m1
	state.Balance = decimal.NewFromInt(1000)
	state.Merchants = []models.Merchant{m1, merchant("M2", "m2@acme.com", 0)}
	require.NoError(t, cache.Save(context.Background(), f.store, cache.MerchantStateKey, state))
}

func TestInit_LoadsMerchantsAndToleratesFailure(t *testing.T) {
	f := newFixture(t, time.Millisecond)
	seedMerchants(t, f)

	f.merchants.EXPECT().ListMerchants(mock.Anything).Return(nil, assert.AnError).Once()

	f.dashboard.Init(context.Background())

	state := f.dashboard.State()
	assert.Len(t, state.Merchants.Merchants, 2)
	assert.Empty(t, state.Merchants.Error)
	assert.Equal(t, service.PollIdle, state.Polling.State)
}

func TestCreatePayment_FillsPayerEmailFromMerchantList(t *testing.T) {
	f := newFixture(t, time.Hour)
	seedMerchants(t, f)
	f.merchants.EXPECT().ListMerchants(mock.Anything).Return([]models.Merchant{merchant("M1", "m1@acme.com", 1000)}, nil).Once()
	f.dashboard.Init(context.Background())

	f.payments.EXPECT().
		CreatePayment(mock.Anything, mock.MatchedBy(func(req dto.CreatePayment) bool { return req.PayerEmail == "m1@acme.com" })).
		Return(&models.PaymentCreated{PaymentID: "pay-1"}, nil).
		Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(approvedPayment(), nil).Once()
	f.payments.EXPECT().GetPaymentEvents(mock.Anything, "pay-1").Return([]models.PaymentEvent{}, nil).Once()

	id, err := f.dashboard.CreatePayment(context.Background(), dto.CreatePayment{PayerID: "M1", PayeeID: "M2", Amount: decimal.NewFromInt(50)})

	require.NoError(t, err)
	assert.Equal(t, "pay-1", id)

	result, err := f.dashboard.AwaitPayment(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.Equal(t, service.OutcomeApproved, result.Outcome)
}

func TestSettlement_RefreshesSelectedMerchant(t *testing.T) {
	f := newFixture(t, time.Millisecond)
	seedMerchants(t, f)
	f.merchants.EXPECT().ListMerchants(mock.Anything).Return([]models.Merchant{merchant("M1", "m1@acme.com", 1000)}, nil).Once()
	f.dashboard.Init(context.Background())

	f.payments.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(&models.PaymentCreated{PaymentID: "pay-1"}, nil).Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(pendingPayment(), nil).Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(approvedPayment(), nil).Once()
	f.payments.EXPECT().GetPaymentEvents(mock.Anything, "pay-1").Return([]models.PaymentEvent{}, nil).Times(2)
	f.payments.EXPECT().ListPayments(mock.Anything).Return([]models.Payment{*approvedPayment()}, nil).Once()

	refreshed := merchant("M1", "m1@acme.com", 950)
	f.merchants.EXPECT().ListMerchants(mock.Anything).Return([]models.Merchant{refreshed, merchant("M2", "m2@acme.com", 50)}, nil).Once()
	f.merchants.EXPECT().GetMerchant(mock.Anything, "M1").Return(&refreshed, nil).Once()
	f.merchants.EXPECT().GetMerchantBalance(mock.Anything, "M1").Return(&models.Balance{Balance: decimal.NewFromInt(950)}, nil).Once()
	f.merchants.EXPECT().GetMerchantEvents(mock.Anything, "M1").Return([]models.MerchantEvent{{ID: "e-1", MerchantID: "M1", EventType: models.EventPaymentDebited}}, nil).Once()

	_, err := f.dashboard.CreatePayment(context.Background(), dto.CreatePayment{PayerID: "M1", PayeeID: "M2", Amount: decimal.NewFromInt(50)})
	require.NoError(t, err)

	done := make(chan service.PollResult, 1)
	go func() {
		result, err := f.dashboard.AwaitPayment(context.Background(), "pay-1")
		if err == nil {
			done <- result
		}
	}()
	require.Eventually(t, func() bool { return f.dashboard.State().Polling.State == service.PollPolling }, time.Second, time.Millisecond)
	f.tick(t)

	select {
	case result := <-done:
		assert.Equal(t, service.OutcomeApproved, result.Outcome)
		assert.Equal(t, 1, result.Attempts)
	case <-time.After(2 * time.Second):
		t.Fatal("payment never settled")
	}

	require.Eventually(t, func() bool {
		return decimal.NewFromInt(950).Equal(f.dashboard.State().Merchants.Balance)
	}, 2*time.Second, time.Millisecond)
	state := f.dashboard.State()
	assert.Len(t, state.Merchants.Events, 1)
	require.Eventually(t, func() bool {
		return f.dashboard.State().Payments.Payments[0].Status == models.StatusApproved
	}, 2*time.Second, time.Millisecond)
}

func TestClose_DropsPendingRefresh(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.merchants.EXPECT().ListMerchants(mock.Anything).Return([]models.Merchant{}, nil).Once()
	f.dashboard.Init(context.Background())

	f.payments.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(&models.PaymentCreated{PaymentID: "pay-1"}, nil).Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(pendingPayment(), nil).Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(approvedPayment(), nil).Once()
	f.payments.EXPECT().GetPaymentEvents(mock.Anything, "pay-1").Return([]models.PaymentEvent{}, nil).Times(2)

	_, err := f.dashboard.CreatePayment(context.Background(), dto.CreatePayment{PayerID: "M1", PayeeID: "M2", Amount: decimal.NewFromInt(50)})
	require.NoError(t, err)
	f.tick(t)
	_, err = f.dashboard.AwaitPayment(context.Background(), "pay-1")
	require.NoError(t, err)

	closed := make(chan struct{})
	go func() {
		f.dashboard.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("close blocked on the pending refresh")
	}
}

func TestAwaitPayment_ReleasedWhenAnotherPaymentTakesOver(t *testing.T) {
	f := newFixture(t, time.Hour)

	second := pendingPayment()
	second.ID = "pay-2"
	f.payments.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(&models.PaymentCreated{PaymentID: "pay-1"}, nil).Once()
	f.payments.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(&models.PaymentCreated{PaymentID: "pay-2"}, nil).Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(pendingPayment(), nil).Once()
	f.payments.EXPECT().GetPayment(mock.Anything, "pay-2").Return(second, nil).Once()
	f.payments.EXPECT().GetPaymentEvents(mock.Anything, mock.Anything).Return([]models.PaymentEvent{}, nil).Times(2)

	req := dto.CreatePayment{PayerID: "M1", PayeeID: "M2", Amount: decimal.NewFromInt(50), Currency: "BRL"}
	_, err := f.dashboard.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.dashboard.PollStatus().State == service.PollPolling }, time.Second, time.Millisecond)

	errs := make(chan error, 1)
	go func() {
		_, err := f.dashboard.AwaitPayment(context.Background(), "pay-1")
		errs <- err
	}()
	// let the waiter register against the running pay-1 loop
	time.Sleep(20 * time.Millisecond)

	_, err = f.dashboard.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "pay-2", f.dashboard.PollStatus().PaymentID)

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, app.ErrPaymentNotTracked)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter for the replaced payment was never released")
	}
}

func TestAwaitPayment_UnknownPayment(t *testing.T) {
	f := newFixture(t, time.Millisecond)

	_, err := f.dashboard.AwaitPayment(context.Background(), "nope")

	assert.ErrorIs(t, err, app.ErrPaymentNotTracked)
}

func TestMonitorSnapshot_UsesTrackedEvents(t *testing.T) {
	f := newFixture(t, time.Millisecond)

	snap := f.dashboard.MonitorSnapshot()

	assert.False(t, snap.LiveEnabled)
	assert.Len(t, snap.Tracked, 3)
}
