package service_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-dashboard/internal/service"
)

type fakeTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

// tickerSpy hands out fake tickers and remembers every one it created.
type tickerSpy struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (s *tickerSpy) New(time.Duration) service.Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()
	ft := &fakeTicker{c: make(chan time.Time)}
	s.tickers = append(s.tickers, ft)
	return ft
}

func (s *tickerSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers)
}

func (s *tickerSpy) Last() *fakeTicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickers[len(s.tickers)-1]
}

// fire delivers n ticks, each one only once the loop is waiting for it.
func fire(t *testing.T, ft *fakeTicker, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case ft.c <- time.Now():
		case <-time.After(2 * time.Second):
			t.Fatalf("poll loop did not accept tick %d", i+1)
		}
	}
}

func newTestPoller(maxAttempts int) (*service.Poller, *tickerSpy) {
	spy := &tickerSpy{}
	poller := service.NewPoller(time.Millisecond, maxAttempts)
	poller.NewTicker = spy.New
	return poller, spy
}
