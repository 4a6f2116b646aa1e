package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
)

var ErrMissingPaymentID = errors.New("payment service did not return a payment id")

// CreatePayment submits a payment and returns the id assigned by the backend.
func (c *Client) CreatePayment(ctx context.Context, req dto.CreatePayment) (*models.PaymentCreated, error) {
	var created models.PaymentCreated
	if err := c.do(ctx, ServicePayment, http.MethodPost, c.PaymentURL+"/payments", req, &created); err != nil {
		return nil, err
	}
	if created.Identifier() == "" {
		return nil, ErrMissingPaymentID
	}
	return &created, nil
}

func (c *Client) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := c.do(ctx, ServicePayment, http.MethodGet, c.PaymentURL+"/payments/"+url.PathEscape(id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) GetPaymentEvents(ctx context.Context, id string) ([]models.PaymentEvent, error) {
	events := []models.PaymentEvent{}
	if err := c.do(ctx, ServicePayment, http.MethodGet, c.PaymentURL+"/payments/"+url.PathEscape(id)+"/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := c.do(ctx, ServicePayment, http.MethodGet, c.PaymentURL+"/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
