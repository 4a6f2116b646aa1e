// Package monitor reports how many saga messages the dashboard has seen,
// both from the event logs it tracks and, optionally, straight off the broker.
package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/jeffleon2/draftea-dashboard/internal/metrics"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/subscriber"
	"github.com/sirupsen/logrus"
)

// Consumer is satisfied by subscriber.KafkaConsumer.
type Consumer interface {
	Listen(ctx context.Context, handler subscriber.Handler)
	Close() error
}

type Snapshot struct {
	Tracked     []models.TopicCount `json:"tracked"`
	Live        []models.TopicCount `json:"live"`
	LiveEnabled bool                `json:"liveEnabled"`
}

// Summarize counts the tracked event logs per saga topic.
func Summarize(paymentEvents []models.PaymentEvent, merchantEvents []models.MerchantEvent) []models.TopicCount {
	created, processed := 0, 0
	for _, e := range paymentEvents {
		switch e.EventType {
		case models.EventPaymentCreated:
			created++
		case models.EventPaymentProcessed:
			processed++
		}
	}
	return []models.TopicCount{
		{Topic: models.TopicPaymentCreated, Count: created},
		{Topic: models.TopicPaymentProcessed, Count: processed},
		{Topic: models.TopicMerchantEvents, Count: len(merchantEvents)},
	}
}

type Monitor struct {
	mu       sync.Mutex
	counts   map[string]int
	consumer Consumer
	cancel   context.CancelFunc
}

func New() *Monitor {
	return &Monitor{counts: make(map[string]int)}
}

// Handle records one broker message. Payloads that are not saga events are
// rejected so the consumer retries and dead-letters them.
func (m *Monitor) Handle(topic string, value []byte) error {
	var event models.BrokerEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("error decoding %s message: %w", topic, err)
	}
	if event.PaymentID == "" {
		return fmt.Errorf("message on %s carries no paymentId", topic)
	}

	m.mu.Lock()
	m.counts[topic]++
	m.mu.Unlock()

	metrics.BrokerMessagesTotal.WithLabelValues(topic).Inc()
	logrus.WithFields(logrus.Fields{"topic": topic, "payment_id": event.PaymentID}).Debug("Broker message observed")
	return nil
}

// Start attaches a live consumer. It is optional; without it the monitor
// only reports tracked counts.
func (m *Monitor) Start(ctx context.Context, consumer Consumer) {
	ctx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	m.consumer = consumer
	m.cancel = cancel
	m.mu.Unlock()

	consumer.Listen(ctx, m.Handle)
	logrus.Info("Broker monitor listening")
}

func (m *Monitor) Live() []models.TopicCount {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.TopicCount, 0, len(m.counts))
	for topic, count := range m.counts {
		out = append(out, models.TopicCount{Topic: topic, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Topic < out[j].Topic })
	return out
}

func (m *Monitor) Snapshot(paymentEvents []models.PaymentEvent, merchantEvents []models.MerchantEvent) Snapshot {
	m.mu.Lock()
	enabled := m.consumer != nil
	m.mu.Unlock()

	return Snapshot{
		Tracked:     Summarize(paymentEvents, merchantEvents),
		Live:        m.Live(),
		LiveEnabled: enabled,
	}
}

func (m *Monitor) Close() error {
	m.mu.Lock()
	consumer, cancel := m.consumer, m.cancel
	m.consumer, m.cancel = nil, nil
	m.mu.Unlock()

	if consumer == nil {
		return nil
	}
	cancel()
	return consumer.Close()
}
