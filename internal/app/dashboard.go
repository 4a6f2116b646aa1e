package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/jeffleon2/draftea-dashboard/internal/monitor"
	"github.com/jeffleon2/draftea-dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

var ErrPaymentNotTracked = errors.New("payment is not being tracked")

type NotificationAPI interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	SendNotification(ctx context.Context, req dto.SendNotification) (json.RawMessage, error)
}

type State struct {
	Merchants models.MerchantState `json:"merchants"`
	Payments  models.PaymentState  `json:"payments"`
	Polling   service.PollStatus   `json:"polling"`
}

// Dashboard is the composition root shared by the HTTP surface and the CLI.
// It owns both managers for its whole lifetime and refreshes merchant data
// once a tracked payment settles.
type Dashboard struct {
	Merchants          *service.MerchantService
	Payments           *service.PaymentService
	Notifications      NotificationAPI
	Monitor            *monitor.Monitor
	SettleRefreshDelay time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	closed  bool
	waiters map[string][]chan service.PollResult
}

func NewDashboard(
	merchants *service.MerchantService,
	payments *service.PaymentService,
	notifications NotificationAPI,
	mon *monitor.Monitor,
	settleRefreshDelay time.Duration,
) *Dashboard {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dashboard{
		Merchants:          merchants,
		Payments:           payments,
		Notifications:      notifications,
		Monitor:            mon,
		SettleRefreshDelay: settleRefreshDelay,
		ctx:                ctx,
		cancel:             cancel,
		waiters:            make(map[string][]chan service.PollResult),
	}
	payments.Poller.OnSettle(d.onSettle)
	payments.Poller.OnCancel(d.notifyWaiters)
	return d
}

// Init rehydrates both managers and kicks off the first merchant list load.
// A failed load is tolerated, the cached list stays in place.
func (d *Dashboard) Init(ctx context.Context) {
	d.Merchants.Init(ctx)
	d.Payments.Init(ctx)
	_ = d.Merchants.LoadMerchants(ctx)
}

// Close stops polling, drops pending refreshes and detaches the monitor.
func (d *Dashboard) Close() {
	d.Payments.Close()

	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.cancel()
	d.wg.Wait()

	if d.Monitor != nil {
		if err := d.Monitor.Close(); err != nil {
			logrus.Warnf("Error closing broker monitor: %s", err.Error())
		}
	}
}

func (d *Dashboard) State() State {
	return State{
		Merchants: d.Merchants.State(),
		Payments:  d.Payments.State(),
		Polling:   d.Payments.Poller.Status(),
	}
}

// CreatePayment fills in the payer email from the merchant list when the
// caller did not send one.
func (d *Dashboard) CreatePayment(ctx context.Context, req dto.CreatePayment) (string, error) {
	if req.PayerEmail == "" {
		if payer, ok := d.Merchants.State().FindMerchant(req.PayerID); ok {
			req.PayerEmail = payer.Email
		}
	}
	return d.Payments.CreatePayment(ctx, req)
}

// AwaitPayment blocks until polling for id reaches a disposition. It
// returns ErrPaymentNotTracked once polling for id stops without one.
func (d *Dashboard) AwaitPayment(ctx context.Context, id string) (service.PollResult, error) {
	ch := make(chan service.PollResult, 1)

	d.mu.Lock()
	status := d.Payments.Poller.Status()
	current := d.Payments.State().Payment
	switch {
	case status.PaymentID == id && status.State == service.PollStopped && status.Outcome != service.OutcomeCancelled:
		d.mu.Unlock()
		result := service.PollResult{PaymentID: id, Outcome: status.Outcome, Attempts: status.Attempts}
		if current != nil && current.ID == id {
			result.Status = current.Status
		}
		return result, nil
	case status.PaymentID == id && status.State == service.PollPolling:
		d.waiters[id] = append(d.waiters[id], ch)
		d.mu.Unlock()
	default:
		d.mu.Unlock()
		return d.settledResult(id)
	}

	select {
	case result := <-ch:
		if result.Outcome == service.OutcomeCancelled {
			return d.settledResult(id)
		}
		return result, nil
	case <-ctx.Done():
		d.dropWaiter(id, ch)
		return service.PollResult{}, ctx.Err()
	}
}

// settledResult reports id's terminal status when it is the tracked payment.
func (d *Dashboard) settledResult(id string) (service.PollResult, error) {
	current := d.Payments.State().Payment
	if current != nil && current.ID == id && current.Status.IsTerminal() {
		return service.PollResult{PaymentID: id, Outcome: service.PollOutcome(current.Status), Status: current.Status}, nil
	}
	return service.PollResult{}, ErrPaymentNotTracked
}

func (d *Dashboard) dropWaiter(id string, ch chan service.PollResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	waiters := d.waiters[id]
	for i, w := range waiters {
		if w == ch {
			d.waiters[id] = append(waiters[:i], waiters[i+1:]...)
			break
		}
	}
	if len(d.waiters[id]) == 0 {
		delete(d.waiters, id)
	}
}

func (d *Dashboard) notifyWaiters(result service.PollResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifyWaitersLocked(result)
}

func (d *Dashboard) notifyWaitersLocked(result service.PollResult) {
	for _, ch := range d.waiters[result.PaymentID] {
		ch <- result
	}
	delete(d.waiters, result.PaymentID)
}

func (d *Dashboard) onSettle(result service.PollResult) {
	d.mu.Lock()
	d.notifyWaitersLocked(result)

	if d.closed || (result.Outcome != service.OutcomeApproved && result.Outcome != service.OutcomeRejected) {
		d.mu.Unlock()
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		select {
		case <-time.After(d.SettleRefreshDelay):
		case <-d.ctx.Done():
			return
		}
		d.refreshParties(d.ctx, result.PaymentID)
	}()
}

// refreshParties reloads the lists and re-fetches the selected merchant when
// it took part in the settled payment.
func (d *Dashboard) refreshParties(ctx context.Context, paymentID string) {
	log := logrus.WithField("payment_id", paymentID)
	log.Info("Payment settled, refreshing balances")

	_ = d.Merchants.LoadMerchants(ctx)
	_ = d.Payments.LoadPayments(ctx)

	payment := d.Payments.State().Payment
	selected := d.Merchants.State().Merchant
	if payment == nil || selected == nil || payment.ID != paymentID {
		return
	}
	if selected.ID != payment.PayerID && selected.ID != payment.PayeeID {
		return
	}
	if err := d.Merchants.FetchMerchant(ctx, selected.ID); err != nil {
		log.WithField("merchant_id", selected.ID).Warnf("Error refreshing merchant after settlement: %s", err.Error())
	}
}

func (d *Dashboard) MerchantState() models.MerchantState { return d.Merchants.State() }
func (d *Dashboard) PaymentState() models.PaymentState   { return d.Payments.State() }
func (d *Dashboard) PollStatus() service.PollStatus      { return d.Payments.Poller.Status() }

func (d *Dashboard) CreateMerchant(ctx context.Context, req dto.CreateMerchant) (string, error) {
	return d.Merchants.CreateMerchant(ctx, req)
}

func (d *Dashboard) FetchMerchant(ctx context.Context, id string) error {
	return d.Merchants.FetchMerchant(ctx, id)
}

func (d *Dashboard) LoadMerchants(ctx context.Context) error {
	return d.Merchants.LoadMerchants(ctx)
}

func (d *Dashboard) LoadPayments(ctx context.Context) error {
	return d.Payments.LoadPayments(ctx)
}

func (d *Dashboard) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return d.Notifications.ListNotifications(ctx)
}

func (d *Dashboard) SendNotification(ctx context.Context, req dto.SendNotification) (json.RawMessage, error) {
	return d.Notifications.SendNotification(ctx, req)
}

func (d *Dashboard) MonitorSnapshot() monitor.Snapshot {
	payments := d.Payments.State()
	merchants := d.Merchants.State()
	if d.Monitor == nil {
		return monitor.Snapshot{Tracked: monitor.Summarize(payments.Events, merchants.Events), Live: []models.TopicCount{}}
	}
	return d.Monitor.Snapshot(payments.Events, merchants.Events)
}
