package models

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string
type PaymentEventType string

const (
	StatusPending  PaymentStatus = "PENDING"
	StatusApproved PaymentStatus = "APPROVED"
	StatusRejected PaymentStatus = "REJECTED"

	EventPaymentCreated   PaymentEventType = "PAYMENT_CREATED"
	EventPaymentProcessed PaymentEventType = "PAYMENT_PROCESSED"

	DefaultCurrency = "BRL"
)

func init() {
	// Amounts travel as JSON numbers on the backend contracts.
	decimal.MarshalJSONWithoutQuotes = true
}

type Payment struct {
	ID         string          `json:"id"`
	PayerID    string          `json:"payerId"`
	PayeeID    string          `json:"payeeId"`
	PayerEmail string          `json:"payerEmail,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Status     PaymentStatus   `json:"status"`
	CreatedAt  Timestamp       `json:"createdAt,omitzero"`
	UpdatedAt  Timestamp       `json:"updatedAt,omitzero"`
}

// PaymentCreated is the reply to POST /payments. Older builds answer with
// "id", the saga-based payment service answers with "paymentId".
type PaymentCreated struct {
	ID        string `json:"id,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (p PaymentCreated) Identifier() string {
	if p.ID != "" {
		return p.ID
	}
	return p.PaymentID
}

type PaymentEvent struct {
	ID            string           `json:"id"`
	PaymentID     string           `json:"paymentId"`
	PayerID       string           `json:"payerId,omitempty"`
	PayeeID       string           `json:"payeeId,omitempty"`
	EventType     PaymentEventType `json:"eventType"`
	Status        PaymentStatus    `json:"status"`
	Amount        decimal.Decimal  `json:"amount"`
	Currency      string           `json:"currency,omitempty"`
	EventDateTime Timestamp        `json:"eventDateTime"`
	Description   string           `json:"description,omitempty"`
}

// PaymentState is everything the payment manager owns; it is mirrored
// wholesale into the cache on every transition.
type PaymentState struct {
	Payment  *Payment       `json:"payment"`
	Events   []PaymentEvent `json:"events"`
	Payments []Payment      `json:"payments"`
	Loading  bool           `json:"loading"`
	Error    string         `json:"error,omitempty"`
}

func DefaultPaymentState() PaymentState {
	return PaymentState{
		Events:   []PaymentEvent{},
		Payments: []Payment{},
	}
}

// Normalize replaces nil slices so that a state survives a cache round-trip unchanged.
func (s *PaymentState) Normalize() {
	if s.Events == nil {
		s.Events = []PaymentEvent{}
	}
	if s.Payments == nil {
		s.Payments = []Payment{}
	}
}

// Clone returns a deep copy safe to hand out to readers.
func (s PaymentState) Clone() PaymentState {
	out := s
	if s.Payment != nil {
		p := *s.Payment
		out.Payment = &p
	}
	out.Events = append([]PaymentEvent{}, s.Events...)
	out.Payments = append([]Payment{}, s.Payments...)
	return out
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
