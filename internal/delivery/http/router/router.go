// Package router contains routing setup for the HTTP delivery.
package router

import (
	"verdant/config"
	"verdant/internal/delivery/http/middleware"
	"verdant/internal/delivery/http/router/handler"
	"verdant/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams collects every handler the router registers.
type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	BidHandler     *handler.BidHandler
	ChatHandler    *handler.ChatHandler
	PaymentHandler *handler.PaymentHandler
	SupportHandler *handler.SupportHandler
	DeviceHandler  *handler.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	bidHandler     *handler.BidHandler
	chatHandler    *handler.ChatHandler
	paymentHandler *handler.PaymentHandler
	supportHandler *handler.SupportHandler
	deviceHandler  *handler.DeviceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		bidHandler:     params.BidHandler,
		chatHandler:    params.ChatHandler,
		paymentHandler: params.PaymentHandler,
		supportHandler: params.SupportHandler,
		deviceHandler:  params.DeviceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	requireSeller := r.authMiddleware.RequireRole(entity.RoleSeller.String())
	requireBuyer := r.authMiddleware.RequireRole(entity.RoleBuyer.String())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/buyer", r.userHandler.RegisterBuyer)
		authGroup.POST("/register/seller", r.userHandler.RegisterSeller)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/recover", r.userHandler.RecoverPassword)
		authGroup.POST("/reset", r.userHandler.ResetPassword)
		authGroup.DELETE("/account", r.userHandler.DeleteAccount, authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Product routes: browsing is public, listing management is seller-only
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/seller/:sellerId", r.productHandler.ListSellerProducts)
		productGroup.POST("", r.productHandler.CreateProduct, authenticate, requireSeller)
		productGroup.PUT("/:id", r.productHandler.UpdateProduct, authenticate, requireSeller)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticate, requireSeller)
		productGroup.POST("/:id/images", r.productHandler.UploadImage, authenticate, requireSeller)
	}

	// Bid routes
	bidGroup := e.Group("/bids")
	bidGroup.Use(authenticate)
	{
		bidGroup.POST("", r.bidHandler.PlaceBid, requireBuyer)
		bidGroup.GET("/product/:productId", r.bidHandler.ListProductBids, requireSeller)
		bidGroup.GET("/seller/:sellerId", r.bidHandler.ListSellerBids, requireSeller)
		bidGroup.GET("/buyer/:buyerId", r.bidHandler.ListBuyerBids, requireBuyer)
		bidGroup.POST("/:id/accept", r.bidHandler.AcceptBid, requireSeller)
		bidGroup.POST("/:id/settle", r.bidHandler.SettleBid, requireSeller)
		bidGroup.POST("/:id/archive", r.bidHandler.ArchiveBid, requireBuyer)
	}

	// Chat routes
	chatGroup := e.Group("/chats")
	chatGroup.Use(authenticate)
	{
		chatGroup.GET("/user/:userId", r.chatHandler.ListThreads)
		chatGroup.GET("/:id", r.chatHandler.GetThread)
		chatGroup.POST("/:id/messages", r.chatHandler.SendMessage)
		chatGroup.POST("/:id/clear", r.chatHandler.ClearMessages)
	}

	// Payment routes
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(authenticate)
	{
		paymentGroup.GET("/bid/:bidId", r.paymentHandler.GetPayment)
		paymentGroup.GET("/bid/:bidId/qr", r.paymentHandler.GetPaymentQR)
		paymentGroup.POST("/complete", r.paymentHandler.CompletePayment, requireBuyer)
	}

	// Support routes: the flow is public so password recovery works while
	// logged out, actions require authentication
	supportGroup := e.Group("/support")
	{
		supportGroup.GET("/flow", r.supportHandler.GetFlow)
		supportGroup.GET("/flow/:step", r.supportHandler.GetStep)
		supportGroup.POST("/action", r.supportHandler.ExecuteAction, authenticate)
	}

	// Device routes
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	if r.cfg.TestRoutes.Enabled {
		r.registerTestRoutes(e, authenticate)
	}
}

// registerTestRoutes adds middleware-validation endpoints used by end-to-end
// smoke checks. Never enabled in production config.
func (r *router) registerTestRoutes(e *echo.Echo, authenticate echo.MiddlewareFunc) {
	testHandler := handler.NewTestHandler()

	testGroup := e.Group("/test")
	{
		testGroup.GET("/public", testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", testHandler.TestAuthMiddleware, authenticate)
	}
}
