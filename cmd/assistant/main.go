package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickfix/assistant-go/internal/config"
	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/handler"
	"github.com/quickfix/assistant-go/internal/infra/cache"
	"github.com/quickfix/assistant-go/internal/infra/client"
	"github.com/quickfix/assistant-go/internal/infra/contextstore"
	"github.com/quickfix/assistant-go/internal/infra/normalizer"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/infra/resilience"
	"github.com/quickfix/assistant-go/internal/knowledge"
	"github.com/quickfix/assistant-go/internal/port"
	"github.com/quickfix/assistant-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("backend_api_url", cfg.BackendAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
		zap.Int("tech_result_limit", cfg.TechResultLimit),
		zap.Bool("normalizer_enabled", cfg.NormalizerEnabled),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "quickfix-assistant")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	techCache := cache.New[[]domain.TechnicianSummary](cfg.CacheTTL)

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	cb := resilience.NewCircuitBreaker("backend-api")

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	technicianClient := client.NewTechnicianClient(httpClient, cfg.BackendAPIURL, cb, resilienceCfg)
	bookingClient := client.NewBookingClient(httpClient, cfg.BackendAPIURL, cb, resilienceCfg)

	// --- Knowledge & conversation state ---
	know := knowledge.NewStore()
	contexts := contextstore.New()

	var norm port.Normalizer
	if cfg.NormalizerEnabled {
		norm = normalizer.NewBasic()
		logger.Info("message normalizer enabled")
	}

	// --- Services ---
	composer := service.NewComposer(
		technicianClient,
		bookingClient,
		know,
		techCache,
		metrics,
		logger,
		cfg.TechResultLimit,
	)
	chatSvc := service.NewChatService(composer, contexts, norm, metrics, logger)

	// --- Router ---
	router := handler.NewRouter(chatSvc, contexts, know, metrics, logger,
		handler.BackendProbe{Name: "technicians-api", Ping: technicianClient.Ping},
		handler.BackendProbe{Name: "bookings-api", Ping: bookingClient.Ping},
	)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
