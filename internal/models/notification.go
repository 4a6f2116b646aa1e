package models

type Notification struct {
	ID             string    `json:"id"`
	PaymentID      string    `json:"paymentId,omitempty"`
	RecipientEmail string    `json:"recipientEmail,omitempty"`
	Subject        string    `json:"subject,omitempty"`
	Content        string    `json:"content,omitempty"`
	SentAt         Timestamp `json:"sentAt,omitzero"`
}
