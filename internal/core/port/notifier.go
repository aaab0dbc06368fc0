package port

import (
	"context"

	"github.com/MikeRez0/coinsend/internal/core/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock/notifier.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, kind domain.NotificationKind, title, message string)
}

type NotificationReader interface {
	Recent() []domain.Notification
}
