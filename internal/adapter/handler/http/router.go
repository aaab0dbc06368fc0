package http

import (
	"net/http"

	"github.com/MikeRez0/coinsend/internal/adapter/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
	conf *config.HTTP
}

func NewRouter(
	conf *config.HTTP,
	formHandler *FormHandler,
	userHandler *UserHandler,
	notificationHandler *NotificationHandler,
	metrics http.Handler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/metrics", gin.WrapH(metrics))

	api := router.Group("/api")
	{
		api.GET("/packages", formHandler.ListPackages)
		api.GET("/receipts", formHandler.ListReceipts)
		api.GET("/notifications", notificationHandler.ListNotifications)
		api.GET("/users/:username", userHandler.LookupUser)

		form := api.Group("/form")
		{
			form.GET("", formHandler.GetForm)
			form.PUT("/username", formHandler.SetUsername)
			form.PUT("/package", formHandler.SelectPackage)
			form.POST("/send", formHandler.Send)
		}
	}

	return &Router{Engine: router, conf: conf}, nil
}

// Server wraps the router in an http.Server bound to the configured address.
func (r *Router) Server() *http.Server {
	return &http.Server{
		Addr:    r.conf.HostString,
		Handler: r.Engine,
	}
}
