package subscriber_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/subscriber"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReader serves queued messages and then blocks until the context ends.
type fakeReader struct {
	msgs   chan kafka.Message
	closed bool
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	r := &fakeReader{msgs: make(chan kafka.Message, len(msgs))}
	for _, m := range msgs {
		r.msgs <- m
	}
	return r
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.msgs:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	messages []interface{}
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, message interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, message)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.topics)
}

func TestListen_DeliversMessagesPerTopic(t *testing.T) {
	reader := newFakeReader(
		kafka.Message{Topic: models.TopicPaymentCreated, Value: []byte(`{"paymentId":"p-1"}`)},
		kafka.Message{Topic: models.TopicPaymentCreated, Value: []byte(`{"paymentId":"p-2"}`)},
	)
	consumer := &subscriber.KafkaConsumer{
		Readers:     []subscriber.MessageReader{reader},
		RetryConfig: config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
	}

	var mu sync.Mutex
	seen := map[string]int{}
	ctx, cancel := context.WithCancel(context.Background())
	consumer.Listen(ctx, func(topic string, _ []byte) error {
		mu.Lock()
		defer mu.Unlock()
		seen[topic]++
		return nil
	})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return seen[models.TopicPaymentCreated] == 2
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, consumer.Close())
	assert.True(t, reader.closed)
}

func TestListen_FailingMessageGoesToDLQ(t *testing.T) {
	reader := newFakeReader(kafka.Message{Topic: models.TopicPaymentEvents, Key: []byte("k"), Value: []byte("not json")})
	dlq := &recordingPublisher{}
	consumer := &subscriber.KafkaConsumer{
		Readers:      []subscriber.MessageReader{reader},
		DLQPublisher: dlq,
		DLQTopic:     models.DashboardDLQTopic,
		RetryConfig:  config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond},
	}

	var mu sync.Mutex
	attempts := 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	consumer.Listen(ctx, func(string, []byte) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		return errors.New("undecodable")
	})

	require.Eventually(t, func() bool { return dlq.count() == 1 }, time.Second, time.Millisecond)

	mu.Lock()
	assert.Equal(t, 3, attempts)
	mu.Unlock()
	assert.Equal(t, models.DashboardDLQTopic, dlq.topics[0])
	msg := dlq.messages[0].(models.DLQMessage)
	assert.Equal(t, models.TopicPaymentEvents, msg.OriginalTopic)
	assert.Equal(t, "k", msg.Key)
	assert.Equal(t, "not json", msg.Value)
	assert.Equal(t, 3, msg.Attempts)
}
