package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationInfo  NotificationKind = "info"
	NotificationError NotificationKind = "error"
)

type Notification struct {
	ID        uuid.UUID
	Kind      NotificationKind
	Title     string
	Message   string
	CreatedAt time.Time
}
