package service

import (
	"context"
	"errors"
	"sync"

	"github.com/jeffleon2/draftea-dashboard/internal/cache"
	"github.com/jeffleon2/draftea-dashboard/internal/gateway"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	errCreatingMerchant = "error creating merchant"
	errFetchingMerchant = "error fetching merchant"
)

var ErrMerchantNotFound = errors.New("merchant not found")

// MerchantAPI defines the merchant service endpoints the manager consumes.
type MerchantAPI interface {
	CreateMerchant(ctx context.Context, req dto.CreateMerchant) (*models.Merchant, error)
	GetMerchant(ctx context.Context, id string) (*models.Merchant, error)
	GetMerchantBalance(ctx context.Context, id string) (*models.Balance, error)
	GetMerchantEvents(ctx context.Context, id string) ([]models.MerchantEvent, error)
	ListMerchants(ctx context.Context) ([]models.Merchant, error)
}

// MerchantService owns the merchant slice of the dashboard state. It never
// polls; callers refresh it when a payment settles.
type MerchantService struct {
	API   MerchantAPI
	Cache cache.Store

	mu    sync.Mutex
	state models.MerchantState
}

func NewMerchantService(api MerchantAPI, store cache.Store) *MerchantService {
	return &MerchantService{
		API:   api,
		Cache: store,
		state: models.DefaultMerchantState(),
	}
}

func (s *MerchantService) Init(ctx context.Context) {
	state := cache.Load(ctx, s.Cache, cache.MerchantStateKey, models.DefaultMerchantState())
	state.Normalize()
	state.Loading = false

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *MerchantService) State() models.MerchantState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// LoadMerchants replaces the merchant list. It is a background refresh:
// failures are logged and returned, the state error is left alone.
func (s *MerchantService) LoadMerchants(ctx context.Context) error {
	merchants, err := s.API.ListMerchants(ctx)
	if err != nil {
		logrus.Errorf("Error loading merchants: %s", err.Error())
		return err
	}
	if merchants == nil {
		merchants = []models.Merchant{}
	}
	s.update(ctx, func(st *models.MerchantState) {
		st.Merchants = merchants
	})
	return nil
}

// CreateMerchant registers a merchant and selects it. Input is sent as is.
func (s *MerchantService) CreateMerchant(ctx context.Context, req dto.CreateMerchant) (string, error) {
	s.update(ctx, func(st *models.MerchantState) {
		st.Loading = true
		st.Error = ""
	})

	merchant, err := s.API.CreateMerchant(ctx, req)
	if err == nil && merchant == nil {
		err = ErrMerchantNotFound
	}
	if err != nil {
		logrus.Errorf("Error creating merchant: %s", err.Error())
		s.update(ctx, func(st *models.MerchantState) {
			st.Loading = false
			st.Error = gateway.Message(err, errCreatingMerchant)
		})
		return "", err
	}

	s.update(ctx, func(st *models.MerchantState) {
		st.Merchants = append(st.Merchants, *merchant)
		st.Merchant = merchant
		st.Balance = merchant.Balance
		st.Events = []models.MerchantEvent{}
		st.Loading = false
	})

	logrus.WithField("merchant_id", merchant.ID).Info("Merchant created")
	return merchant.ID, nil
}

// FetchMerchant loads detail, balance and events for one merchant. Either all
// three land in the state together or none does.
func (s *MerchantService) FetchMerchant(ctx context.Context, id string) error {
	s.update(ctx, func(st *models.MerchantState) {
		st.Loading = true
		st.Error = ""
	})

	var (
		merchant *models.Merchant
		balance  decimal.Decimal
		events   []models.MerchantEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.API.GetMerchant(gctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrMerchantNotFound
		}
		merchant = m
		return nil
	})
	g.Go(func() error {
		b, err := s.API.GetMerchantBalance(gctx, id)
		if err != nil {
			return err
		}
		if b != nil {
			balance = b.Balance
		}
		return nil
	})
	g.Go(func() error {
		e, err := s.API.GetMerchantEvents(gctx, id)
		events = e
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithField("merchant_id", id).Errorf("Error fetching merchant: %s", err.Error())
		s.update(ctx, func(st *models.MerchantState) {
			st.Loading = false
			st.Error = gateway.Message(err, errFetchingMerchant)
		})
		return err
	}
	if events == nil {
		events = []models.MerchantEvent{}
	}

	s.update(ctx, func(st *models.MerchantState) {
		st.Merchant = merchant
		st.Balance = balance
		st.Events = events
		st.Loading = false
	})
	return nil
}

func (s *MerchantService) update(ctx context.Context, fn func(*models.MerchantState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	if err := cache.Save(context.WithoutCancel(ctx), s.Cache, cache.MerchantStateKey, s.state); err != nil {
		logrus.Warnf("Error persisting merchant state: %s", err.Error())
	}
}
