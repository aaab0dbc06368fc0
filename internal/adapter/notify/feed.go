package notify

import (
	"context"
	"sync"
	"time"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultFeedSize = 50

// Feed keeps the latest notifications for clients to poll and logs each one.
type Feed struct {
	logger *zap.Logger
	limit  int

	mu    sync.Mutex
	items []domain.Notification
}

func NewFeed(limit int, logger *zap.Logger) *Feed {
	if limit <= 0 {
		limit = DefaultFeedSize
	}
	return &Feed{logger: logger, limit: limit}
}

func (f *Feed) Notify(ctx context.Context, kind domain.NotificationKind, title, message string) {
	n := domain.Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	f.logger.Info("Notification",
		zap.String("kind", string(kind)), zap.String("title", title), zap.String("message", message))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	if over := len(f.items) - f.limit; over > 0 {
		f.items = append(f.items[:0:0], f.items[over:]...)
	}
}

// Recent returns notifications oldest first.
func (f *Feed) Recent() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]domain.Notification, len(f.items))
	copy(result, f.items)
	return result
}
