package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jeffleon2/draftea-dashboard/internal/cache"
	"github.com/jeffleon2/draftea-dashboard/internal/gateway"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const errCreatingPayment = "error creating payment"

var ErrPaymentNotFound = errors.New("payment not found")

// errSuperseded ends a loop whose payment is no longer the tracked one.
var errSuperseded = fmt.Errorf("payment no longer tracked: %w", context.Canceled)

// PaymentAPI defines the payment service endpoints the manager consumes.
type PaymentAPI interface {
	CreatePayment(ctx context.Context, req dto.CreatePayment) (*models.PaymentCreated, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	GetPaymentEvents(ctx context.Context, id string) ([]models.PaymentEvent, error)
	ListPayments(ctx context.Context) ([]models.Payment, error)
}

type trackedKey struct {
	id     string
	status models.PaymentStatus
}

// PaymentService owns the payment slice of the dashboard state and keeps
// the poller in step with the tracked payment.
type PaymentService struct {
	API    PaymentAPI
	Cache  cache.Store
	Poller *Poller

	mu      sync.Mutex
	state   models.PaymentState
	tracked trackedKey
}

func NewPaymentService(api PaymentAPI, store cache.Store, poller *Poller) *PaymentService {
	return &PaymentService{
		API:    api,
		Cache:  store,
		Poller: poller,
		state:  models.DefaultPaymentState(),
	}
}

// Init rehydrates the cached state and resumes polling when the cached
// payment is still pending.
func (s *PaymentService) Init(ctx context.Context) {
	state := cache.Load(ctx, s.Cache, cache.PaymentStateKey, models.DefaultPaymentState())
	state.Normalize()
	// a run that was interrupted mid-request has nothing left in flight
	state.Loading = false

	s.mu.Lock()
	s.state = state
	s.tracked = trackedKey{}
	s.mu.Unlock()

	s.update(ctx, func(*models.PaymentState) {})
}

// Close stops any polling loop. The state itself stays cached.
func (s *PaymentService) Close() {
	s.Poller.Stop()
}

func (s *PaymentService) State() models.PaymentState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// CreatePayment submits the payment and starts tracking it. The returned id
// is empty whenever err is not nil.
func (s *PaymentService) CreatePayment(ctx context.Context, req dto.CreatePayment) (string, error) {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return "", err
	}

	s.update(ctx, func(st *models.PaymentState) {
		st.Loading = true
		st.Error = ""
	})

	payment, events, err := s.create(ctx, req)
	if err != nil {
		logrus.Errorf("Error creating payment: %s", err.Error())
		s.update(ctx, func(st *models.PaymentState) {
			st.Loading = false
			st.Error = gateway.Message(err, errCreatingPayment)
		})
		return "", err
	}

	s.update(ctx, func(st *models.PaymentState) {
		st.Payments = append(st.Payments, *payment)
		st.Payment = payment
		st.Events = events
		st.Loading = false
	})

	logrus.WithField("payment_id", payment.ID).Infof("Payment created with status %s", payment.Status)
	return payment.ID, nil
}

func (s *PaymentService) create(ctx context.Context, req dto.CreatePayment) (*models.Payment, []models.PaymentEvent, error) {
	created, err := s.API.CreatePayment(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	id := created.Identifier()

	payment, err := s.API.GetPayment(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if payment == nil {
		return nil, nil, ErrPaymentNotFound
	}

	events, err := s.API.GetPaymentEvents(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if events == nil {
		events = []models.PaymentEvent{}
	}
	return payment, events, nil
}

// LoadPayments refreshes the payment list in the background. Failures are
// logged and returned but never reach the state error.
func (s *PaymentService) LoadPayments(ctx context.Context) error {
	payments, err := s.API.ListPayments(ctx)
	if err != nil {
		logrus.Errorf("Error loading payments: %s", err.Error())
		return err
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	s.update(ctx, func(st *models.PaymentState) {
		st.Payments = payments
	})
	return nil
}

// update applies fn, mirrors the result into the cache and, when the
// tracked payment id or status changed, re-evaluates polling.
func (s *PaymentService) update(ctx context.Context, fn func(*models.PaymentState)) {
	s.mu.Lock()
	fn(&s.state)
	s.persistLocked(ctx)

	key := trackedKey{}
	if s.state.Payment != nil {
		key = trackedKey{id: s.state.Payment.ID, status: s.state.Payment.Status}
	}
	changed := key != s.tracked
	s.tracked = key
	s.mu.Unlock()

	if changed {
		s.syncPolling(key)
	}
}

func (s *PaymentService) persistLocked(ctx context.Context) {
	if err := cache.Save(context.WithoutCancel(ctx), s.Cache, cache.PaymentStateKey, s.state); err != nil {
		logrus.Warnf("Error persisting payment state: %s", err.Error())
	}
}

func (s *PaymentService) syncPolling(key trackedKey) {
	if key.id == "" || key.status != models.StatusPending {
		s.Poller.Stop()
		return
	}
	s.Poller.Start(key.id, s.tick)
}

// tick is one poll round: detail and events are fetched together and
// applied in a single update.
func (s *PaymentService) tick(ctx context.Context, paymentID string) (models.PaymentStatus, error) {
	var (
		payment *models.Payment
		events  []models.PaymentEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.API.GetPayment(gctx, paymentID)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrPaymentNotFound
		}
		payment = p
		return nil
	})
	g.Go(func() error {
		e, err := s.API.GetPaymentEvents(gctx, paymentID)
		events = e
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}
	if events == nil {
		events = []models.PaymentEvent{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.state.Payment == nil || s.state.Payment.ID != paymentID {
		return "", errSuperseded
	}
	s.state.Payment = payment
	s.state.Events = events
	// the poller ends itself on terminal statuses, so only the key moves here
	s.tracked = trackedKey{id: payment.ID, status: payment.Status}
	s.persistLocked(ctx)

	return payment.Status, nil
}
