package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-dashboard/config"
	"github.com/jeffleon2/draftea-dashboard/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	ServicePayment      = "payment"
	ServiceMerchant     = "merchant"
	ServiceNotification = "notification"

	maxErrorBody = 64 << 10
)

// Client talks to the payment, merchant and notification services. Each
// service has its own base URL; callers pick the one that owns the resource.
type Client struct {
	HTTP            *http.Client
	PaymentURL      string
	MerchantURL     string
	NotificationURL string
	AuthToken       string
}

func New(cfg config.Services) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		HTTP:            &http.Client{Timeout: timeout},
		PaymentURL:      strings.TrimRight(cfg.PaymentURL, "/"),
		MerchantURL:     strings.TrimRight(cfg.MerchantURL, "/"),
		NotificationURL: strings.TrimRight(cfg.NotificationURL, "/"),
		AuthToken:       cfg.AuthToken,
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, service, method, url string, in, out interface{}) error {
	log := logrus.WithFields(logrus.Fields{
		"service":    service,
		"method":     method,
		"url":        url,
		"request_id": uuid.NewString(),
	})

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			log.Errorf("Error encoding request body: %s", err.Error())
			metrics.GatewayRequestsTotal.WithLabelValues(service, "request_error").Inc()
			return &RequestError{Method: method, URL: url, Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		log.Errorf("Error building request: %s", err.Error())
		metrics.GatewayRequestsTotal.WithLabelValues(service, "request_error").Inc()
		return &RequestError{Method: method, URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.AuthToken != "" {
		req.Header.Set("Authorization", c.AuthToken)
	}

	log.Info("Outbound request")
	start := time.Now()
	resp, err := c.HTTP.Do(req)
	metrics.GatewayRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Errorf("No response from server: %s", err.Error())
		metrics.GatewayRequestsTotal.WithLabelValues(service, "no_response").Inc()
		return &NoResponseError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		serverErr := &ServerError{Status: resp.StatusCode, Body: raw}
		var parsed errorBody
		if json.Unmarshal(raw, &parsed) == nil {
			serverErr.Code = parsed.Code
			serverErr.Message = parsed.Message
			if serverErr.Message == "" {
				serverErr.Message = parsed.Error
			}
		}
		log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(raw),
		}).Error("Server rejected request")
		metrics.GatewayRequestsTotal.WithLabelValues(service, "server_error").Inc()
		return serverErr
	}

	metrics.GatewayRequestsTotal.WithLabelValues(service, "ok").Inc()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		log.Errorf("Error decoding response: %s", err.Error())
		return fmt.Errorf("error decoding %s response from %s: %w", service, url, err)
	}
	return nil
}
