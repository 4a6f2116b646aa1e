package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type Handler func(topic string, value []byte) error

// KafkaConsumer reads several topics, one goroutine per reader. A message the
// handler keeps rejecting is retried with backoff and then dead-lettered.
type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher Publisher
	DLQTopic     string
	RetryConfig  config.RetryConfig

	wg sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	publisher Publisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]MessageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: publisher,
		DLQTopic:     models.DashboardDLQTopic,
		RetryConfig:  retryConfig,
	}
}

// Listen starts the readers and returns immediately. They run until ctx is done.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r MessageReader) {
			defer c.wg.Done()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					logrus.Errorf("Kafka error: %s", err.Error())
					select {
					case <-time.After(c.RetryConfig.Backoff(0)):
					case <-ctx.Done():
						return
					}
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

// Close waits for the reader goroutines, which exit once the Listen context
// is done, and closes the readers.
func (c *KafkaConsumer) Close() error {
	c.wg.Wait()
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(msg.Topic, msg.Value)
		if err == nil {
			return
		}

		backoff := c.RetryConfig.Backoff(attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	logrus.Errorf("Message failed after %d retries: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.Publish(ctx, c.DLQTopic, dlqMessage); err != nil {
		logrus.Errorf("Failed to send message to DLQ: %v", err)
		return
	}
	logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
}
