package port

import (
	"context"

	"github.com/MikeRez0/coinsend/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type FormService interface {
	Catalog() domain.Catalog
	SetUsername(ctx context.Context, raw string) (*domain.FormState, error)
	SelectPackage(ctx context.Context, selection domain.Selection) (*domain.FormState, error)
	Submit(ctx context.Context) (*domain.FormState, error)
	Snapshot(ctx context.Context) *domain.FormState
	Receipts(ctx context.Context) []domain.Receipt
}
