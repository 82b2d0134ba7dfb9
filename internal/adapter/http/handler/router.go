package handler

import (
	"chronos-wallet/internal/adapter/http/middleware"
	"chronos-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	ChartSvc       ports.ChartService
	SessionSvc     ports.SessionService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// Everything except unlock, health and the docs sits behind the session
// token and the lock gate.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	v1 := r.Group("/api/v1")

	sessionHandler := NewSessionHandler(deps.WalletSvc, deps.SessionSvc)
	sessionAuth := middleware.SessionAuth(deps.SessionSvc, deps.Logger)
	lockGate := middleware.LockGate(deps.WalletSvc)

	session := v1.Group("/session")
	{
		session.POST("/unlock", sessionHandler.Unlock)
		session.POST("/lock", sessionAuth, sessionHandler.Lock)
		session.GET("/me", sessionAuth, sessionHandler.CurrentUser)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := v1.Group("/wallet", sessionAuth, lockGate)
	{
		wallet.GET("", walletHandler.GetWallet)
		wallet.GET("/tokens", walletHandler.ListTokens)
		wallet.GET("/transactions", walletHandler.ListTransactions)
		wallet.GET("/portfolio", walletHandler.GetPortfolio)
		wallet.GET("/receive-address", walletHandler.GetReceiveAddress)
		wallet.POST("/send", walletHandler.Send)
		wallet.POST("/receive", walletHandler.Receive)
		wallet.POST("/deposit-usd", walletHandler.DepositUSD)
	}

	chartHandler := NewChartHandler(deps.ChartSvc)
	tokens := v1.Group("/tokens", sessionAuth, lockGate)
	{
		tokens.GET("/:symbol/chart", chartHandler.GetChart)
	}

	return r
}
