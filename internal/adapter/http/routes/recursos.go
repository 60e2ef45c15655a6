package routes

import (
	"net/http"

	"recursos_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRecursos = "/recursos"
	PathCredits  = "/credits/:owner_type/:owner_id"
	PathWebhooks = "/webhooks"
)

func addRecursoRoutes(rg *gin.RouterGroup, h *handlers.RecursoHandler) {
	recursos := rg.Group(PathRecursos)
	{
		recursos.POST("", h.CreateRecurso)
		recursos.GET("", h.ListRecursos)
		recursos.POST("/expire", h.ExpireOverdue)
		recursos.GET("/:id", h.GetRecurso)
		recursos.DELETE("/:id", h.DeleteRecurso)
		recursos.PUT("/:id/steps/:step", h.SaveStep)
		recursos.GET("/:id/resume", h.ResumeRecurso)

		recursos.POST("/:id/payment", h.RequestPayment)
		recursos.POST("/:id/payment/sync", h.SyncPayment)

		recursos.PATCH("/:id/intake", h.SaveIntake)
		recursos.POST("/:id/documents", h.AttachDocument)
		recursos.POST("/:id/analysis", h.StartAnalysis)
		recursos.POST("/:id/complete", h.CompleteRecurso)
		recursos.POST("/:id/cancel", h.CancelRecurso)
	}
}

func addCreditRoutes(rg *gin.RouterGroup, h *handlers.CreditLedgerHandler) {
	credits := rg.Group(PathCredits)
	{
		credits.GET("", h.GetBalance)
		credits.GET("/transactions", h.GetStatement)
		credits.POST("/purchases", h.Purchase)
		credits.POST("/consumptions", h.Consume)
		credits.POST("/refunds", h.Refund)
		credits.POST("/top-ups", h.RequestTopUp)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.PaymentWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", h.ReceivePaymentNotification)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
