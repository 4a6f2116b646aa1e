package dto

import (
	"errors"
	"strings"
)

var ErrEmptyMessage = errors.New("notification message is required")

type SendNotification struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	UserID  string `json:"userId"`
}

func (n *SendNotification) Sanitize() {
	n.Message = strings.TrimSpace(n.Message)
	n.Type = strings.ToUpper(strings.TrimSpace(n.Type))
	n.UserID = strings.TrimSpace(n.UserID)
}

func (n *SendNotification) Validate() error {
	if n.Message == "" {
		return ErrEmptyMessage
	}
	return nil
}
