package dto

import (
	"errors"
	"strings"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrSamePayerPayee  = errors.New("payer and payee must be different merchants")
	ErrMissingPayer    = errors.New("payer ID is required")
	ErrMissingPayee    = errors.New("payee ID is required")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrMissingCurrency = errors.New("currency is required")
)

type CreatePayment struct {
	PayerID    string          `json:"payerId"`
	PayerEmail string          `json:"payerEmail"`
	PayeeID    string          `json:"payeeId"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
}

func (p *CreatePayment) Sanitize() {
	p.PayerID = strings.TrimSpace(p.PayerID)
	p.PayeeID = strings.TrimSpace(p.PayeeID)
	p.PayerEmail = strings.ToLower(strings.TrimSpace(p.PayerEmail))
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = models.DefaultCurrency
	}
}

// Validate is the client-side guard run before anything is sent.
func (p *CreatePayment) Validate() error {
	if p.PayerID == "" {
		return ErrMissingPayer
	}
	if p.PayeeID == "" {
		return ErrMissingPayee
	}
	if p.PayerID == p.PayeeID {
		return ErrSamePayerPayee
	}
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if p.Currency == "" {
		return ErrMissingCurrency
	}
	return nil
}
