package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-dashboard/internal/metrics"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

type PollState string
type PollOutcome string

const (
	PollIdle    PollState = "IDLE"
	PollPolling PollState = "POLLING"
	PollStopped PollState = "STOPPED"

	OutcomeApproved  PollOutcome = "APPROVED"
	OutcomeRejected  PollOutcome = "REJECTED"
	OutcomeGaveUp    PollOutcome = "GAVE_UP"
	OutcomeCancelled PollOutcome = "CANCELLED"

	// OutcomeUnexpected ends a run whose payment left PENDING for a status
	// other than APPROVED or REJECTED.
	OutcomeUnexpected PollOutcome = "UNEXPECTED_STATUS"

	DefaultPollInterval    = 1500 * time.Millisecond
	DefaultPollMaxAttempts = 60
)

// Ticker is the slice of time.Ticker the poller depends on.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	*time.Ticker
}

func (t realTicker) C() <-chan time.Time { return t.Ticker.C }

func NewRealTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

// TickFunc fetches the latest status of the tracked payment and applies it.
type TickFunc func(ctx context.Context, paymentID string) (models.PaymentStatus, error)

type PollStatus struct {
	State       PollState   `json:"state"`
	PaymentID   string      `json:"paymentId,omitempty"`
	Attempts    int         `json:"attempts"`
	MaxAttempts int         `json:"maxAttempts"`
	Outcome     PollOutcome `json:"outcome,omitempty"`
}

type PollResult struct {
	PaymentID string
	Outcome   PollOutcome
	Attempts  int
	Status    models.PaymentStatus
}

// Poller drives at most one status loop at a time. Start and Stop are
// serialized by ctl; mu guards the fields the loop reports through Status.
type Poller struct {
	Interval    time.Duration
	MaxAttempts int
	NewTicker   TickerFactory

	ctl sync.Mutex

	mu       sync.Mutex
	status   PollStatus
	cancel   context.CancelFunc
	done     chan struct{}
	onSettle func(PollResult)
	onCancel func(PollResult)
}

func NewPoller(interval time.Duration, maxAttempts int) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultPollMaxAttempts
	}
	return &Poller{
		Interval:    interval,
		MaxAttempts: maxAttempts,
		NewTicker:   NewRealTicker,
		status:      PollStatus{State: PollIdle, MaxAttempts: maxAttempts},
	}
}

// OnSettle registers a callback fired once a run ends on its own.
// Explicit stops never fire it.
func (p *Poller) OnSettle(fn func(PollResult)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onSettle = fn
}

// OnCancel registers a callback fired when a run is stopped or replaced
// before reaching a disposition.
func (p *Poller) OnCancel(fn func(PollResult)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onCancel = fn
}

func (p *Poller) Status() PollStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Start begins polling paymentID. Calling it again for the payment already
// being polled is a no-op; a different id replaces the running loop.
func (p *Poller) Start(paymentID string, tick TickFunc) {
	p.ctl.Lock()
	defer p.ctl.Unlock()

	p.mu.Lock()
	if p.status.State == PollPolling && p.status.PaymentID == paymentID {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ticker := p.NewTicker(p.Interval)

	p.mu.Lock()
	p.status = PollStatus{
		State:       PollPolling,
		PaymentID:   paymentID,
		MaxAttempts: p.MaxAttempts,
	}
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	logrus.WithField("payment_id", paymentID).Infof("Polling payment status every %s", p.Interval)
	go p.loop(ctx, ticker, done, paymentID, tick)
}

// Stop cancels the running loop and waits for it to exit. It is safe to
// call when nothing is running.
func (p *Poller) Stop() {
	p.ctl.Lock()
	defer p.ctl.Unlock()
	p.stopLocked()
}

func (p *Poller) stopLocked() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) loop(ctx context.Context, ticker Ticker, done chan struct{}, paymentID string, tick TickFunc) {
	log := logrus.WithField("payment_id", paymentID)
	var result *PollResult

	for result == nil {
		select {
		case <-ctx.Done():
			result = &PollResult{PaymentID: paymentID, Outcome: OutcomeCancelled}
		case <-ticker.C():
			result = p.attempt(ctx, log, paymentID, tick)
		}
	}

	ticker.Stop()

	p.mu.Lock()
	p.status.State = PollStopped
	p.status.Outcome = result.Outcome
	result.Attempts = p.status.Attempts
	p.cancel = nil
	p.done = nil
	notify := p.onSettle
	if result.Outcome == OutcomeCancelled {
		notify = p.onCancel
	}
	p.mu.Unlock()
	close(done)

	metrics.PollOutcomesTotal.WithLabelValues(string(result.Outcome)).Inc()
	log.WithField("attempts", result.Attempts).Infof("Polling stopped: %s", result.Outcome)

	if notify != nil {
		notify(*result)
	}
}

// attempt runs one tick and returns a result once the run should end.
func (p *Poller) attempt(ctx context.Context, log *logrus.Entry, paymentID string, tick TickFunc) *PollResult {
	status, err := tick(ctx, paymentID)
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return &PollResult{PaymentID: paymentID, Outcome: OutcomeCancelled}
	}
	metrics.PollAttemptsTotal.Inc()

	p.mu.Lock()
	p.status.Attempts++
	attempts := p.status.Attempts
	p.mu.Unlock()

	switch {
	case err != nil:
		metrics.PollTickFailuresTotal.Inc()
		log.WithField("attempt", attempts).Warnf("Error polling payment status: %s", err.Error())
	case status == models.StatusApproved:
		return &PollResult{PaymentID: paymentID, Outcome: OutcomeApproved, Status: status}
	case status == models.StatusRejected:
		return &PollResult{PaymentID: paymentID, Outcome: OutcomeRejected, Status: status}
	case status != models.StatusPending:
		log.WithField("attempt", attempts).Warnf("Payment left PENDING with unexpected status %q", status)
		return &PollResult{PaymentID: paymentID, Outcome: OutcomeUnexpected, Status: status}
	}

	if attempts >= p.MaxAttempts {
		log.Warnf("Payment still pending after %d attempts, giving up", attempts)
		return &PollResult{PaymentID: paymentID, Outcome: OutcomeGaveUp, Status: status}
	}
	return nil
}
