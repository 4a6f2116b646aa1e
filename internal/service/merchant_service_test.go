package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jeffleon2/draftea-dashboard/internal/cache"
	"github.com/jeffleon2/draftea-dashboard/internal/gateway"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/jeffleon2/draftea-dashboard/internal/service"
	"github.com/jeffleon2/draftea-dashboard/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMerchantService(t *testing.T) (*service.MerchantService, *mocks.MockMerchantAPI, cache.Store) {
	t.Helper()
	api := mocks.NewMockMerchantAPI(t)
	store := cache.NewMemoryStore()
	return service.NewMerchantService(api, store), api, store
}

func acme() *models.Merchant {
	return &models.Merchant{
		ID:       "m-1",
		Name:     "Acme",
		Email:    "a@acme.com",
		Phone:    "(11) 99999-9999",
		Balance:  decimal.NewFromInt(1000),
		Currency: "BRL",
	}
}

func seededMerchantState() models.MerchantState {
	state := models.DefaultMerchantState()
	state.Merchant = acme()
	state.Balance = decimal.NewFromInt(1000)
	state.Merchants = []models.Merchant{*acme()}
	state.Events = []models.MerchantEvent{{
		ID:            "me-1",
		MerchantID:    "m-1",
		EventType:     models.EventMerchantCreated,
		BalanceChange: decimal.NewFromInt(1000),
		NewBalance:    decimal.NewFromInt(1000),
	}}
	return state
}

func TestCreateMerchant_Success(t *testing.T) {
	svc, api, store := newMerchantService(t)
	ctx := context.Background()
	req := dto.CreateMerchant{
		Name:           "Acme",
		Email:          "a@acme.com",
		Phone:          "(11) 99999-9999",
		InitialBalance: decimal.NewFromInt(1000),
		Currency:       "BRL",
	}

	api.EXPECT().
		CreateMerchant(ctx, req).
		Return(acme(), nil).
		Once()

	id, err := svc.CreateMerchant(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "m-1", id)
	state := svc.State()
	assert.Len(t, state.Merchants, 1)
	assert.True(t, decimal.NewFromInt(1000).Equal(state.Merchant.Balance))
	assert.True(t, decimal.NewFromInt(1000).Equal(state.Balance))
	assert.Empty(t, state.Events)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)

	cached := cache.Load(ctx, store, cache.MerchantStateKey, models.DefaultMerchantState())
	assert.Equal(t, "m-1", cached.Merchant.ID)
}

func TestCreateMerchant_SendsInputUnvalidated(t *testing.T) {
	svc, api, _ := newMerchantService(t)
	ctx := context.Background()
	req := dto.CreateMerchant{Name: ""}

	api.EXPECT().
		CreateMerchant(ctx, req).
		Return(nil, &gateway.ServerError{Status: http.StatusBadRequest, Message: "name is required"}).
		Once()

	id, err := svc.CreateMerchant(ctx, req)

	assert.Error(t, err)
	assert.Empty(t, id)
	state := svc.State()
	assert.Equal(t, "name is required", state.Error)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Merchants)
}

func TestCreateMerchant_NoResponseUsesFallback(t *testing.T) {
	svc, api, _ := newMerchantService(t)
	ctx := context.Background()

	api.EXPECT().
		CreateMerchant(ctx, mock.Anything).
		Return(nil, &gateway.NoResponseError{Method: http.MethodPost, Err: context.DeadlineExceeded}).
		Once()

	_, err := svc.CreateMerchant(ctx, dto.CreateMerchant{Name: "Acme"})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "error creating merchant", svc.State().Error)
}

func TestFetchMerchant_Success(t *testing.T) {
	svc, api, _ := newMerchantService(t)
	ctx := context.Background()
	events := []models.MerchantEvent{{ID: "me-2", MerchantID: "m-1", EventType: models.EventPaymentReceived}}

	api.EXPECT().GetMerchant(mock.Anything, "m-1").Return(acme(), nil).Once()
	api.EXPECT().GetMerchantBalance(mock.Anything, "m-1").Return(&models.Balance{Balance: decimal.NewFromInt(1050)}, nil).Once()
	api.EXPECT().GetMerchantEvents(mock.Anything, "m-1").Return(events, nil).Once()

	err := svc.FetchMerchant(ctx, "m-1")

	require.NoError(t, err)
	state := svc.State()
	assert.Equal(t, "m-1", state.Merchant.ID)
	assert.True(t, decimal.NewFromInt(1050).Equal(state.Balance))
	assert.Equal(t, events, state.Events)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error)
}

func TestFetchMerchant_BalanceFailureLeavesStateUnchanged(t *testing.T) {
	svc, api, store := newMerchantService(t)
	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, store, cache.MerchantStateKey, seededMerchantState()))
	svc.Init(ctx)
	before := svc.State()

	updated := acme()
	updated.Name = "Acme Renamed"
	api.EXPECT().GetMerchant(mock.Anything, "m-1").Return(updated, nil).Maybe()
	api.EXPECT().GetMerchantBalance(mock.Anything, "m-1").Return(nil, errors.New("connection reset")).Once()
	api.EXPECT().GetMerchantEvents(mock.Anything, "m-1").Return([]models.MerchantEvent{}, nil).Maybe()

	err := svc.FetchMerchant(ctx, "m-1")

	assert.Error(t, err)
	after := svc.State()
	assert.Equal(t, "error fetching merchant", after.Error)
	assert.False(t, after.Loading)
	assert.Equal(t, before.Merchant, after.Merchant)
	assert.Equal(t, before.Balance, after.Balance)
	assert.Equal(t, before.Events, after.Events)
}

func TestFetchMerchant_ServerMessageSurfaced(t *testing.T) {
	svc, api, _ := newMerchantService(t)
	ctx := context.Background()

	api.EXPECT().GetMerchant(mock.Anything, "missing").Return(nil, &gateway.ServerError{Status: http.StatusNotFound, Message: "Merchant not found"}).Once()
	api.EXPECT().GetMerchantBalance(mock.Anything, "missing").Return(nil, errors.New("cancelled")).Maybe()
	api.EXPECT().GetMerchantEvents(mock.Anything, "missing").Return(nil, errors.New("cancelled")).Maybe()

	err := svc.FetchMerchant(ctx, "missing")

	assert.Error(t, err)
	assert.Nil(t, svc.State().Merchant)
}

func TestLoadMerchants_ReplacesList(t *testing.T) {
	svc, api, _ := newMerchantService(t)
	ctx := context.Background()
	list := []models.Merchant{*acme(), {ID: "m-2", Name: "Globex"}}

	api.EXPECT().ListMerchants(ctx).Return(list, nil).Once()

	require.NoError(t, svc.LoadMerchants(ctx))

	assert.Equal(t, list, svc.State().Merchants)
}

func TestLoadMerchants_FailureKeepsErrorClear(t *testing.T) {
	svc, api, store := newMerchantService(t)
	ctx := context.Background()
	require.NoError(t, cache.Save(ctx, store, cache.MerchantStateKey, seededMerchantState()))
	svc.Init(ctx)

	api.EXPECT().ListMerchants(ctx).Return(nil, errors.New("connection refused")).Once()

	err := svc.LoadMerchants(ctx)

	assert.Error(t, err)
	state := svc.State()
	assert.Empty(t, state.Error)
	assert.Len(t, state.Merchants, 1)
}

func TestInit_RehydratesMerchantState(t *testing.T) {
	svc, _, store := newMerchantService(t)
	ctx := context.Background()
	seeded := seededMerchantState()
	seeded.Loading = true
	require.NoError(t, cache.Save(ctx, store, cache.MerchantStateKey, seeded))

	svc.Init(ctx)

	seeded.Loading = false
	assert.Equal(t, seeded, svc.State())
}

func TestInit_MissingMerchantCacheStartsEmpty(t *testing.T) {
	svc, _, _ := newMerchantService(t)

	svc.Init(context.Background())

	assert.Equal(t, models.DefaultMerchantState(), svc.State())
}
