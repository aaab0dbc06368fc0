package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:     http.StatusInternalServerError,
	domain.ErrDataNotFound: http.StatusNotFound,

	domain.ErrBadRequest:   http.StatusBadRequest,
	domain.ErrLookupFailed: http.StatusBadGateway,

	domain.ErrInsufficientBalance: http.StatusPaymentRequired,
	domain.ErrUnknownPackage:      http.StatusUnprocessableEntity,
	domain.ErrSendUnavailable:     http.StatusUnprocessableEntity,
	domain.ErrSendInProgress:      http.StatusConflict,
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusFor(err error) (int, bool) {
	for e, code := range errorStatusMap {
		if errors.Is(err, e) {
			return code, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccessWithStatus sends a response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
