package api

import (
	"net/http"

	"genesis-backend/internal/auth/delivery"
	"genesis-backend/pkg/realtime"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.authHandler.Login)
		}

		// Realtime change feed. Browser WebSocket clients pass the token
		// as a query parameter.
		api.GET("/events", delivery.AuthMiddleware(h.authUsecase), realtime.ServeWS(h.hub))

		// Pipeline stage routes (protected)
		statuses := api.Group("/statuses")
		statuses.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			statuses.GET("", h.statusHandler.List)
			statuses.POST("", h.statusHandler.Create)
			statuses.PUT("/reorder", h.statusHandler.Reorder)
			statuses.PUT("/:id", h.statusHandler.Update)
			statuses.DELETE("/:id", h.statusHandler.Delete)
		}

		// Customer routes (protected)
		customers := api.Group("/customers")
		customers.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			customers.GET("", h.customerHandler.List)
			customers.GET("/:id", h.customerHandler.GetByID)
			customers.POST("", h.customerHandler.Create)
			customers.PUT("/:id", h.customerHandler.Update)
			customers.DELETE("/:id", h.customerHandler.Delete)
		}

		// Lead routes (protected)
		leads := api.Group("/leads")
		leads.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			leads.GET("", h.leadHandler.List)
			leads.GET("/:id", h.leadHandler.GetByID)
			leads.POST("", h.leadHandler.Create)
			leads.PUT("/:id", h.leadHandler.Update)
			leads.PATCH("/:id/status", h.leadHandler.UpdateStatus)
			leads.DELETE("/:id", h.leadHandler.Delete)
		}

		// Kanban board routes (protected)
		board := api.Group("/board")
		board.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			board.GET("", h.boardHandler.Get)
			board.POST("/move", h.boardHandler.Move)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			tasks.GET("", h.taskHandler.List)
			tasks.GET("/:id", h.taskHandler.GetByID)
			tasks.POST("", h.taskHandler.Create)
			tasks.PUT("/:id", h.taskHandler.Update)
			tasks.DELETE("/:id", h.taskHandler.Delete)
		}

		// Payment routes (protected)
		payments := api.Group("/payments")
		payments.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			payments.GET("", h.paymentHandler.List)
			payments.GET("/:id", h.paymentHandler.GetByID)
			payments.POST("", h.paymentHandler.Create)
			payments.PUT("/:id", h.paymentHandler.Update)
			payments.DELETE("/:id", h.paymentHandler.Delete)
		}

		// Activity feed routes (protected)
		activities := api.Group("/activities")
		activities.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			activities.GET("", h.activityHandler.List)
			activities.POST("", h.activityHandler.Create)
		}

		// Team member routes (protected)
		team := api.Group("/team")
		team.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			team.GET("", h.teamHandler.List)
			team.POST("", h.teamHandler.Create)
			team.PUT("/:id", h.teamHandler.Update)
			team.DELETE("/:id", h.teamHandler.Delete)
		}

		// Dashboard and report routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			dashboard.GET("/metrics", h.dashboardHandler.Metrics)
		}

		reports := api.Group("/reports")
		reports.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			reports.GET("/funnel", h.dashboardHandler.Funnel)
		}
	}
}
