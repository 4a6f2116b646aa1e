package models

import "github.com/shopspring/decimal"

type MerchantEventType string

const (
	EventMerchantCreated MerchantEventType = "MERCHANT_CREATED"
	EventPaymentReceived MerchantEventType = "PAYMENT_RECEIVED"
	EventPaymentDebited  MerchantEventType = "PAYMENT_DEBITED"
)

type Merchant struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type Balance struct {
	Balance decimal.Decimal `json:"balance"`
}

type MerchantEvent struct {
	ID            string            `json:"id"`
	MerchantID    string            `json:"merchantId"`
	EventType     MerchantEventType `json:"eventType"`
	BalanceChange decimal.Decimal   `json:"balanceChange"`
	NewBalance    decimal.Decimal   `json:"newBalance"`
	Description   string            `json:"description,omitempty"`
	EventDateTime Timestamp         `json:"eventDateTime"`
}

type MerchantState struct {
	Merchant  *Merchant       `json:"merchant"`
	Balance   decimal.Decimal `json:"balance"`
	Events    []MerchantEvent `json:"events"`
	Merchants []Merchant      `json:"merchants"`
	Loading   bool            `json:"loading"`
	Error     string          `json:"error,omitempty"`
}

func DefaultMerchantState() MerchantState {
	return MerchantState{
		Balance:   decimal.NewFromInt(0),
		Events:    []MerchantEvent{},
		Merchants: []Merchant{},
	}
}

func (s *MerchantState) Normalize() {
	if s.Events == nil {
		s.Events = []MerchantEvent{}
	}
	if s.Merchants == nil {
		s.Merchants = []Merchant{}
	}
}

func (s MerchantState) Clone() MerchantState {
	out := s
	if s.Merchant != nil {
		m := *s.Merchant
		out.Merchant = &m
	}
	out.Events = append([]MerchantEvent{}, s.Events...)
	out.Merchants = append([]Merchant{}, s.Merchants...)
	return out
}

// FindMerchant looks a merchant up in the cached list.
func (s MerchantState) FindMerchant(id string) (Merchant, bool) {
	for _, m := range s.Merchants {
		if m.ID == id {
			return m, true
		}
	}
	return Merchant{}, false
}
