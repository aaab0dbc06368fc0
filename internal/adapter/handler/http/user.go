package http

import (
	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/MikeRez0/coinsend/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the lookup capability over HTTP for remote clients.
type UserHandler struct {
	Handler
	lookup port.UserLookup
}

func NewUserHandler(lookup port.UserLookup, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		lookup:  lookup,
	}, nil
}

type userResponse struct {
	Found     bool   `json:"found"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (uh *UserHandler) LookupUser(ctx *gin.Context) {
	username := domain.NormalizeUsername(ctx.Param("username"))

	result, err := uh.lookup.Lookup(ctx.Request.Context(), username)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, userResponse{Found: result.Found, AvatarURL: result.AvatarURL})
}
