package models

import "time"

// NotificationKind is the visual class of a notification.
type NotificationKind string

const (
	NotificationLoading NotificationKind = "loading"
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a transient, non-blocking status message.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (n Notification) String() string {
	return "[" + string(n.Kind) + "] " + n.Message
}

// NotificationService publishes notifications and replaces them in place.
type NotificationService interface {
	Push(kind NotificationKind, message string) Notification
	Update(id string, kind NotificationKind, message string) (Notification, bool)
	Recent() []Notification
}
