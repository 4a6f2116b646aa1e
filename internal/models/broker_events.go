package models

import "time"

const (
	TopicPaymentCreated   = "payment-created"
	TopicPaymentEvents    = "payment-events"
	TopicPaymentProcessed = "payment-processed"
	TopicMerchantEvents   = "merchant-events"
	DashboardDLQTopic     = "dashboard.dlq"
)

// BrokerEvent is the subset of the saga events the monitor reads off the broker.
type BrokerEvent struct {
	PaymentID string        `json:"paymentId"`
	PayerID   string        `json:"payerId,omitempty"`
	PayeeID   string        `json:"payeeId,omitempty"`
	Status    PaymentStatus `json:"status,omitempty"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
