package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
)

func (c *Client) CreateMerchant(ctx context.Context, req dto.CreateMerchant) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := c.do(ctx, ServiceMerchant, http.MethodPost, c.MerchantURL+"/merchants", req, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (c *Client) GetMerchant(ctx context.Context, id string) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := c.do(ctx, ServiceMerchant, http.MethodGet, c.MerchantURL+"/merchants/"+url.PathEscape(id), nil, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (c *Client) GetMerchantBalance(ctx context.Context, id string) (*models.Balance, error) {
	var balance models.Balance
	if err := c.do(ctx, ServiceMerchant, http.MethodGet, c.MerchantURL+"/merchants/"+url.PathEscape(id)+"/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (c *Client) GetMerchantEvents(ctx context.Context, id string) ([]models.MerchantEvent, error) {
	events := []models.MerchantEvent{}
	if err := c.do(ctx, ServiceMerchant, http.MethodGet, c.MerchantURL+"/merchants/"+url.PathEscape(id)+"/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	merchants := []models.Merchant{}
	if err := c.do(ctx, ServiceMerchant, http.MethodGet, c.MerchantURL+"/merchants", nil, &merchants); err != nil {
		return nil, err
	}
	return merchants, nil
}
