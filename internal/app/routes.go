package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-dashboard/internal/handler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handler.DashboardHandler) {
	a.Router.GET("/state", h.GetState)

	merchants := a.Router.Group("/merchants")
	merchants.GET("", h.ListMerchants)
	merchants.POST("", h.CreateMerchant)
	merchants.POST("/refresh", h.RefreshMerchants)
	merchants.GET("/:id", h.GetMerchant)

	payments := a.Router.Group("/payments")
	payments.GET("", h.ListPayments)
	payments.POST("", h.CreatePayment)
	payments.POST("/refresh", h.RefreshPayments)
	payments.GET("/current", h.CurrentPayment)

	notifications := a.Router.Group("/notifications")
	notifications.GET("", h.ListNotifications)
	notifications.POST("", h.SendNotification)

	a.Router.GET("/monitor", h.Monitor)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
