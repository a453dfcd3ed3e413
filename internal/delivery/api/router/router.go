// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ewarrants/internal/delivery/api/middleware"
	"ewarrants/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	WarrantyHandler  *handler.WarrantyHandler
	AccountHandler   *handler.AccountHandler
	AssistantHandler *handler.AssistantHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	warrantyHandler  *handler.WarrantyHandler
	accountHandler   *handler.AccountHandler
	assistantHandler *handler.AssistantHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		warrantyHandler:  params.WarrantyHandler,
		accountHandler:   params.AccountHandler,
		assistantHandler: params.AssistantHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	api.POST("/register", r.authHandler.Register)
	api.POST("/verify-email", r.authHandler.VerifyEmail)
	api.POST("/login", r.authHandler.Login)
	api.POST("/forgot-password", r.authHandler.ForgotPassword)
	api.POST("/reset-password", r.authHandler.ResetPassword)
	api.GET("/categories", handler.Categories)

	// Everything below acts on the authenticated caller only
	private := api.Group("", r.authMiddleware.Authenticate)
	{
		private.POST("/change-password", r.authHandler.ChangePassword)
		private.GET("/me", r.accountHandler.GetProfile)
		private.POST("/notification-prefs", r.accountHandler.UpdateNotificationPrefs)
		private.DELETE("/account", r.accountHandler.DeleteAccount)
		private.GET("/account/export", r.accountHandler.ExportWarranties)
	}

	warranties := private.Group("/warranties")
	{
		warranties.POST("", r.warrantyHandler.CreateWarranty)
		warranties.GET("", r.warrantyHandler.ListWarranties)
		warranties.GET("/:id", r.warrantyHandler.GetWarranty)
		warranties.PUT("/:id", r.warrantyHandler.UpdateWarranty)
		warranties.DELETE("/:id", r.warrantyHandler.DeleteWarranty)
	}

	{
		private.POST("/upload", r.assistantHandler.Upload)
		private.POST("/process-receipt", r.assistantHandler.ProcessReceipt)
		private.POST("/find-product-image", r.assistantHandler.FindProductImage)
		private.POST("/chat", r.assistantHandler.Chat)
	}
}
