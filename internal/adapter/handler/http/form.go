package http

import (
	"net/http"
	"time"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type FormHandler struct {
	Handler
	service port.FormService
}

func NewFormHandler(service port.FormService, logger *zap.Logger) (*FormHandler, error) {
	return &FormHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type packageResponse struct {
	ID             string           `json:"id"`
	Coins          *int64           `json:"coins"`
	Price          *decimal.Decimal `json:"price"`
	PriceFormatted string           `json:"priceFormatted,omitempty"`
	IsCustom       bool             `json:"isCustom"`
}

func (fh *FormHandler) ListPackages(ctx *gin.Context) {
	catalog := fh.service.Catalog()

	result := make([]packageResponse, 0, len(catalog))
	for _, p := range catalog {
		r := packageResponse{ID: p.ID, IsCustom: p.IsCustom}
		if !p.IsCustom {
			coins, price := p.Coins, p.Price
			r.Coins = &coins
			r.Price = &price
			r.PriceFormatted = formatEUR(price)
		}
		result = append(result, r)
	}

	fh.handleSuccess(ctx, result)
}

type recipientResponse struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type formResponse struct {
	Username            string             `json:"username"`
	Status              string             `json:"status"`
	Reason              string             `json:"reason,omitempty"`
	Recipient           *recipientResponse `json:"recipient,omitempty"`
	SelectedPackageID   string             `json:"selectedPackageId,omitempty"`
	CustomAmount        string             `json:"customAmount"`
	TotalCoins          int64              `json:"totalCoins"`
	TotalPrice          decimal.Decimal    `json:"totalPrice"`
	TotalPriceFormatted string             `json:"totalPriceFormatted"`
	Balance             int64              `json:"balance"`
	Sent                int64              `json:"sent"`
	Step                string             `json:"step"`
	StatusText          string             `json:"statusText,omitempty"`
	DeliveryMessage     string             `json:"deliveryMessage,omitempty"`
	CanSend             bool               `json:"canSend"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

func newFormResponse(s *domain.FormState) formResponse {
	r := formResponse{
		Username:            s.Username,
		Status:              string(s.Validity.State),
		Reason:              s.Validity.Reason,
		SelectedPackageID:   s.Selection.PackageID,
		CustomAmount:        s.Selection.CustomAmount,
		TotalCoins:          s.Quote.Coins,
		TotalPrice:          s.Quote.Price,
		TotalPriceFormatted: formatEUR(s.Quote.Price),
		Balance:             s.Balance.Current,
		Sent:                s.Balance.Sent,
		Step:                string(s.Step),
		StatusText:          s.StatusText,
		DeliveryMessage:     s.DeliveryMessage,
		CanSend:             s.CanSend,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.Recipient != nil {
		r.Recipient = &recipientResponse{Username: s.Recipient.Username, AvatarURL: s.Recipient.AvatarURL}
	}
	return r
}

func (fh *FormHandler) GetForm(ctx *gin.Context) {
	fh.handleSuccess(ctx, newFormResponse(fh.service.Snapshot(ctx)))
}

type usernameRequest struct {
	Username string `json:"username"`
}

func (fh *FormHandler) SetUsername(ctx *gin.Context) {
	req := usernameRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		fh.handleValidationError(ctx, err)
		return
	}

	state, err := fh.service.SetUsername(ctx, req.Username)
	if err != nil {
		fh.handleError(ctx, err)
		return
	}
	fh.handleSuccess(ctx, newFormResponse(state))
}

type packageRequest struct {
	PackageID    string `json:"packageId"`
	CustomAmount string `json:"customAmount"`
}

func (fh *FormHandler) SelectPackage(ctx *gin.Context) {
	req := packageRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		fh.handleValidationError(ctx, err)
		return
	}

	state, err := fh.service.SelectPackage(ctx, domain.Selection{
		PackageID:    req.PackageID,
		CustomAmount: req.CustomAmount,
	})
	if err != nil {
		fh.handleError(ctx, err)
		return
	}
	fh.handleSuccess(ctx, newFormResponse(state))
}

func (fh *FormHandler) Send(ctx *gin.Context) {
	state, err := fh.service.Submit(ctx)
	if err != nil {
		fh.handleError(ctx, err)
		return
	}
	fh.handleSuccessWithStatus(ctx, newFormResponse(state), http.StatusAccepted)
}

type receiptResponse struct {
	ID              string          `json:"id"`
	Recipient       string          `json:"recipient"`
	Coins           int64           `json:"coins"`
	Price           decimal.Decimal `json:"price"`
	DeliveryMessage string          `json:"deliveryMessage"`
	SentAt          time.Time       `json:"sentAt"`
}

func (fh *FormHandler) ListReceipts(ctx *gin.Context) {
	list := fh.service.Receipts(ctx)

	result := make([]receiptResponse, 0, len(list))
	for _, r := range list {
		result = append(result, receiptResponse{
			ID:              r.ID.String(),
			Recipient:       r.Recipient.Username,
			Coins:           r.Coins,
			Price:           r.Price,
			DeliveryMessage: r.DeliveryMessage,
			SentAt:          r.SentAt,
		})
	}

	fh.handleSuccess(ctx, result)
}
