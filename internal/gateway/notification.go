package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jeffleon2/draftea-dashboard/internal/models"
	"github.com/jeffleon2/draftea-dashboard/internal/models/dto"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if err := c.do(ctx, ServiceNotification, http.MethodGet, c.NotificationURL+"/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SendNotification returns the raw reply; the notification service does not
// publish a schema for it.
func (c *Client) SendNotification(ctx context.Context, req dto.SendNotification) (json.RawMessage, error) {
	var reply json.RawMessage
	if err := c.do(ctx, ServiceNotification, http.MethodPost, c.NotificationURL+"/notifications", req, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}
