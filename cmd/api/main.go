package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chronos-wallet/config"
	"chronos-wallet/internal/adapter/feed/coingecko"
	httpHandler "chronos-wallet/internal/adapter/http/handler"
	"chronos-wallet/internal/adapter/storage/memory"
	redisStorage "chronos-wallet/internal/adapter/storage/redis"
	"chronos-wallet/internal/core/ports"
	"chronos-wallet/internal/service"
	"chronos-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Chronos Wallet")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Quote cache is optional; without Redis the wallet falls back to the
	// hardcoded defaults whenever the upstream feed is down.
	var quoteCache ports.QuoteCache
	healthCheckers := []ports.HealthChecker{}
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		quoteCache = redisStorage.NewQuoteCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Price feed client
	feedClient := coingecko.New(
		cfg.Feed.BaseURL,
		&http.Client{Timeout: cfg.Feed.Timeout},
		cfg.Feed.RateLimitRPS,
		cfg.Feed.RateBurst,
		log,
	)
	healthCheckers = append(healthCheckers, coingecko.NewHealthCheck(feedClient))

	// In-memory wallet state, seeded with the demo holdings
	store := memory.NewWalletStore(cfg.Wallet.Username)

	// Core services
	simulator := service.NewSimulator(store, cfg.Simulator, log)
	walletSvc := service.NewWalletService(store, simulator, cfg.Wallet.Password, cfg.Wallet.ReceiveAddress, log)
	chartSvc := service.NewChartService(feedClient, store, quoteCache, cfg.Feed.CacheTTL, log)
	sessionSvc := service.NewJWTSessionService(cfg.Session.Secret, cfg.Session.Expiry, cfg.Session.Issuer)

	// Background price refresh
	poller := service.NewPricePoller(feedClient, store, quoteCache, cfg.Feed.PollInterval, cfg.Feed.CacheTTL, log)
	go poller.Run(ctx)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		ChartSvc:       chartSvc,
		SessionSvc:     sessionSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	cancel() // stop the price poller

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
