package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sorvetes-mauriti/api/internal/cart"
	"github.com/sorvetes-mauriti/api/internal/catalog"
	"github.com/sorvetes-mauriti/api/internal/handlers"
	"github.com/sorvetes-mauriti/api/internal/platform/config"
	"github.com/sorvetes-mauriti/api/internal/platform/observability"
	"github.com/sorvetes-mauriti/api/internal/services"
)

func main() {
	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")

	cfg, err := config.Load()
	if err != nil {
		var invalid *config.ValidationError
		if errors.As(err, &invalid) {
			logger.Fatal("missing required configuration", zap.Strings("fields", invalid.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	store, err := catalog.NewStore(catalog.StoreDeps{
		EndpointURL: cfg.Catalog.EndpointURL,
		HTTPClient:  httpClient,
		Timeout:     cfg.Catalog.Timeout,
		Fallback:    catalog.FallbackProducts(),
		Logger:      logger.Named("catalog"),
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog store", zap.Error(err))
	}

	quoteService, err := services.NewQuoteService(services.QuoteServiceDeps{
		EndpointURL:     cfg.Leads.EndpointURL,
		HTTPClient:      httpClient,
		WhatsAppBaseURL: cfg.WhatsApp.BaseURL,
		WhatsAppNumber:  cfg.WhatsApp.Number,
		HandoffDelay:    cfg.WhatsApp.HandoffDelay,
		Logger:          logger.Named("quotes"),
	})
	if err != nil {
		logger.Fatal("failed to initialise quote service", zap.Error(err))
	}

	sessions := cart.NewSessions()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One load per process start; the timer inside the store guarantees the
	// catalog settles (live or fallback) within the configured bound.
	var catalogReady atomic.Bool
	go func() {
		if _, err := store.Load(ctx); err != nil {
			logger.Warn("catalog load error", zap.Error(err))
		}
		catalogReady.Store(true)
	}()

	health := handlers.NewHealthHandlers(handlers.WithReadyCheck(catalogReady.Load))

	router := handlers.NewRouter(
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.TraceMiddleware(),
			observability.RequestLoggerMiddleware(),
			observability.RecoveryMiddleware(logger),
		),
		handlers.WithHealthHandlers(health),
		handlers.WithCatalogRoutes(handlers.NewCatalogHandlers(store).Routes),
		handlers.WithCartRoutes(handlers.NewCartHandlers(sessions).Routes),
		handlers.WithQuoteRoutes(handlers.NewQuoteHandlers(quoteService, store, sessions).Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
