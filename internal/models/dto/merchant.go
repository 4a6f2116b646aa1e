package dto

import (
	"errors"
	"strings"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingName     = errors.New("merchant name is required")
	ErrInvalidEmail    = errors.New("merchant email is invalid")
	ErrMissingPhone    = errors.New("merchant phone is required")
	ErrNegativeBalance = errors.New("initial balance cannot be negative")
)

type CreateMerchant struct {
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Currency       string          `json:"currency"`
}

func (m *CreateMerchant) Sanitize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	m.Phone = strings.TrimSpace(m.Phone)
	m.Currency = strings.ToUpper(strings.TrimSpace(m.Currency))
	if m.Currency == "" {
		m.Currency = models.DefaultCurrency
	}
}

// Validate is a form-level check. The merchant manager never calls it, the
// caller decides whether a request is worth sending.
func (m *CreateMerchant) Validate() error {
	if m.Name == "" {
		return ErrMissingName
	}
	at := strings.Index(m.Email, "@")
	if at < 1 || !strings.Contains(m.Email[at+1:], ".") {
		return ErrInvalidEmail
	}
	if m.Phone == "" {
		return ErrMissingPhone
	}
	if m.InitialBalance.IsNegative() {
		return ErrNegativeBalance
	}
	return nil
}
