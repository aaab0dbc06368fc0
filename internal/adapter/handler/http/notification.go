package http

import (
	"time"

	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationHandler struct {
	Handler
	reader port.NotificationReader
}

func NewNotificationHandler(reader port.NotificationReader, logger *zap.Logger) (*NotificationHandler, error) {
	return &NotificationHandler{
		Handler: *NewHandler(logger),
		reader:  reader,
	}, nil
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (nh *NotificationHandler) ListNotifications(ctx *gin.Context) {
	list := nh.reader.Recent()

	result := make([]notificationResponse, 0, len(list))
	for _, n := range list {
		result = append(result, notificationResponse{
			ID:        n.ID.String(),
			Kind:      string(n.Kind),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}

	nh.handleSuccess(ctx, result)
}
