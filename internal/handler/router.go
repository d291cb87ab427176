package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/knowledge"
	"github.com/quickfix/assistant-go/internal/port"
	"github.com/quickfix/assistant-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("handler")

const (
	serviceName    = "QuickFix Assistant"
	serviceVersion = "1.0.0"
)

// BackendProbe is a named reachability check run by /healthz.
type BackendProbe struct {
	Name string
	Ping func(ctx context.Context) error
}

// NewRouter creates the HTTP router with all routes and middleware.
func NewRouter(
	svc *service.ChatService,
	contexts port.ContextStore,
	know *knowledge.Store,
	metrics *observability.Metrics,
	logger *zap.Logger,
	probes ...BackendProbe,
) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(probes))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Chat turn
		r.Post("/chat", chatHandler(svc, logger))

		// Conversation context
		r.Get("/context/{userId}", getContextHandler(contexts, logger))
		r.Delete("/context/{userId}", deleteContextHandler(contexts, logger))

		// Introspection
		r.Get("/intents", intentsHandler())
		r.Get("/faq", faqHandler(know))
		r.Get("/analytics", analyticsHandler(contexts, metrics))
	})

	return r
}

// healthzHandler pings every registered backend concurrently. A failed
// ping degrades the report but never fails the endpoint; the assistant
// keeps answering with knowledge-base content when backends are down.
func healthzHandler(probes []BackendProbe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		now := time.Now().Format(time.RFC3339)

		// Each goroutine writes its own slot, so no lock is needed.
		services := make([]domain.ServiceHealth, len(probes))
		var g errgroup.Group
		for i, p := range probes {
			i, p := i, p
			g.Go(func() error {
				start := time.Now()
				err := p.Ping(ctx)
				latency := time.Since(start).Milliseconds()
				status := "healthy"
				if err != nil {
					status = "degraded"
				}
				services[i] = domain.ServiceHealth{
					Name: p.Name, Status: status, LatencyMs: latency, LastChecked: now,
				}
				return nil
			})
		}
		g.Wait()

		overall := "healthy"
		for _, s := range services {
			if s.Status == "degraded" {
				overall = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:    overall,
			Service:   serviceName,
			Version:   serviceVersion,
			Timestamp: now,
			Services:  services,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
