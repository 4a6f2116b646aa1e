package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-dashboard/internal/gateway"
	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
	"github.com/jeffleon2/draftea-dashboard/internal/monitor"
	"github.com/jeffleon2/draftea-dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

// Dashboard is the read/write surface the HTTP layer renders from.
type Dashboard interface {
	MerchantState() models.MerchantState
	PaymentState() models.PaymentState
	PollStatus() service.PollStatus
	CreateMerchant(ctx context.Context, req dto.CreateMerchant) (string, error)
	FetchMerchant(ctx context.Context, id string) error
	LoadMerchants(ctx context.Context) error
	CreatePayment(ctx context.Context, req dto.CreatePayment) (string, error)
	LoadPayments(ctx context.Context) error
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	SendNotification(ctx context.Context, req dto.SendNotification) (json.RawMessage, error)
	MonitorSnapshot() monitor.Snapshot
}

type DashboardHandler struct {
	Dashboard Dashboard
}

func NewDashboardHandler(d Dashboard) *DashboardHandler {
	return &DashboardHandler{Dashboard: d}
}

// GET /state
func (h *DashboardHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"merchants": h.Dashboard.MerchantState(),
		"payments":  h.Dashboard.PaymentState(),
		"polling":   h.Dashboard.PollStatus(),
	})
}

// GET /merchants
func (h *DashboardHandler) ListMerchants(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.MerchantState().Merchants)
}

// POST /merchants
func (h *DashboardHandler) CreateMerchant(c *gin.Context) {
	var req dto.CreateMerchant
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.Dashboard.CreateMerchant(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": h.Dashboard.MerchantState().Error})
		return
	}

	state := h.Dashboard.MerchantState()
	c.JSON(http.StatusCreated, gin.H{"id": id, "merchant": state.Merchant, "balance": state.Balance})
}

// POST /merchants/refresh
func (h *DashboardHandler) RefreshMerchants(c *gin.Context) {
	if err := h.Dashboard.LoadMerchants(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": gateway.Message(err, "error loading merchants")})
		return
	}
	c.JSON(http.StatusOK, h.Dashboard.MerchantState().Merchants)
}

// GET /merchants/:id
func (h *DashboardHandler) GetMerchant(c *gin.Context) {
	if err := h.Dashboard.FetchMerchant(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": h.Dashboard.MerchantState().Error})
		return
	}

	state := h.Dashboard.MerchantState()
	c.JSON(http.StatusOK, gin.H{
		"merchant": state.Merchant,
		"balance":  state.Balance,
		"events":   state.Events,
	})
}

// GET /payments
func (h *DashboardHandler) ListPayments(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.PaymentState().Payments)
}

// POST /payments
func (h *DashboardHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.Dashboard.CreatePayment(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(statusFor(err), gin.H{"error": h.Dashboard.PaymentState().Error})
		return
	}

	state := h.Dashboard.PaymentState()
	c.JSON(http.StatusAccepted, gin.H{"id": id, "payment": state.Payment, "polling": h.Dashboard.PollStatus()})
}

// POST /payments/refresh
func (h *DashboardHandler) RefreshPayments(c *gin.Context) {
	if err := h.Dashboard.LoadPayments(c.Request.Context()); err != nil {
		c.JSON(statusFor(err), gin.H{"error": gateway.Message(err, "error loading payments")})
		return
	}
	c.JSON(http.StatusOK, h.Dashboard.PaymentState().Payments)
}

// GET /payments/current
func (h *DashboardHandler) CurrentPayment(c *gin.Context) {
	state := h.Dashboard.PaymentState()
	c.JSON(http.StatusOK, gin.H{
		"payment": state.Payment,
		"events":  state.Events,
		"polling": h.Dashboard.PollStatus(),
	})
}

// GET /notifications
func (h *DashboardHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.Dashboard.ListNotifications(c.Request.Context())
	if err != nil {
		logrus.Errorf("Error listing notifications: %s", err.Error())
		c.JSON(statusFor(err), gin.H{"error": gateway.Message(err, "error loading notifications")})
		return
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// POST /notifications
func (h *DashboardHandler) SendNotification(c *gin.Context) {
	var req dto.SendNotification
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.Dashboard.SendNotification(c.Request.Context(), req)
	if err != nil {
		logrus.Errorf("Error sending notification: %s", err.Error())
		c.JSON(statusFor(err), gin.H{"error": gateway.Message(err, "error sending notification")})
		return
	}
	if len(reply) == 0 {
		c.Status(http.StatusAccepted)
		return
	}
	c.Data(http.StatusAccepted, "application/json", reply)
}

// GET /monitor
func (h *DashboardHandler) Monitor(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.MonitorSnapshot())
}

func isValidationError(err error) bool {
	for _, target := range []error{
		dto.ErrMissingPayer,
		dto.ErrMissingPayee,
		dto.ErrSamePayerPayee,
		dto.ErrInvalidAmount,
		dto.ErrMissingCurrency,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps a backend failure onto the status the dashboard answers with.
func statusFor(err error) int {
	var serverErr *gateway.ServerError
	var noResponse *gateway.NoResponseError
	switch {
	case errors.As(err, &serverErr):
		if serverErr.Status >= 400 && serverErr.Status < 500 {
			return serverErr.Status
		}
		return http.StatusBadGateway
	case errors.As(err, &noResponse):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
