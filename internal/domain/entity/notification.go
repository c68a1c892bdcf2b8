package entity

import "time"

type NotificationType string

const (
	NotificationTradeRequest   NotificationType = "trade_request"
	NotificationTradeStatus    NotificationType = "trade_status"
	NotificationTradeCompleted NotificationType = "trade_completed"
	NotificationReportReceived NotificationType = "report_received"
)

// Notification is immutable except for its read flag and is deletable by the
// recipient only.
type Notification struct {
	ID        int64            `json:"id"`
	Recipient string           `json:"recipient"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewNotification(id int64, recipient string, typ NotificationType, message string, now time.Time) *Notification {
	return &Notification{
		ID:        id,
		Recipient: recipient,
		Type:      typ,
		Message:   message,
		CreatedAt: now,
	}
}

func (n *Notification) MarkRead() { n.Read = true }
