package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/handler"
	"github.com/quickfix/assistant-go/internal/infra/cache"
	"github.com/quickfix/assistant-go/internal/infra/client"
	"github.com/quickfix/assistant-go/internal/infra/contextstore"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/infra/resilience"
	"github.com/quickfix/assistant-go/internal/knowledge"
	"github.com/quickfix/assistant-go/internal/service"

	"go.uber.org/zap"
)

const bookingID = "507f1f77bcf86cd799439011"

// newBackendServer mocks the QuickFix booking backend: technician
// availability plus booking records.
func newBackendServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/technicians/available", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"user":     map[string]string{"name": "Nimal Perera", "phone": "0771234567"},
				"rating":   4.8,
				"skills":   []string{"wiring", "panel repair"},
				"distance": 2.3,
			},
			{
				"user":   map[string]string{"name": "Kumar Raj"},
				"rating": 4.5,
				"skills": []string{"lighting"},
			},
		})
	})

	mux.HandleFunc("/bookings/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, bookingID) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"payment": map[string]string{"status": "completed", "method": "card"},
		})
	})

	return httptest.NewServer(mux)
}

func newAssistant(backendURL string) http.Handler {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	resilienceCfg := resilience.Config{MaxRetries: 0, InitialBackoff: time.Millisecond, MaxConcurrency: 10}
	cb := resilience.NewCircuitBreaker("integration-backend")
	httpClient := &http.Client{Timeout: 5 * time.Second}

	technicianClient := client.NewTechnicianClient(httpClient, backendURL, cb, resilienceCfg)
	bookingClient := client.NewBookingClient(httpClient, backendURL, cb, resilienceCfg)

	know := knowledge.NewStore()
	contexts := contextstore.New()

	composer := service.NewComposer(
		technicianClient,
		bookingClient,
		know,
		cache.New[[]domain.TechnicianSummary](time.Minute),
		metrics,
		logger,
		5,
	)
	chatSvc := service.NewChatService(composer, contexts, nil, metrics, logger)

	return handler.NewRouter(chatSvc, contexts, know, metrics, logger,
		handler.BackendProbe{Name: "technicians-api", Ping: technicianClient.Ping},
		handler.BackendProbe{Name: "bookings-api", Ping: bookingClient.Ping},
	)
}

func chat(t *testing.T, router http.Handler, message, userID string) *domain.ReplyBundle {
	t.Helper()
	body, _ := json.Marshal(domain.ChatRequest{Message: message, UserID: userID})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("chat returned %d: %s", rec.Code, rec.Body.String())
	}
	var bundle domain.ReplyBundle
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("invalid chat response: %v", err)
	}
	return &bundle
}

// TestIntegration_FullFlow spins up a mock backend and drives whole
// conversations through the HTTP surface.
func TestIntegration_FullFlow(t *testing.T) {
	backend := newBackendServer()
	defer backend.Close()
	router := newAssistant(backend.URL)

	t.Run("greeting turn", func(t *testing.T) {
		bundle := chat(t, router, "hello", "user-1")
		if bundle.Intent != domain.IntentGreeting {
			t.Errorf("expected greeting, got %q", bundle.Intent)
		}
		if bundle.Reply == "" {
			t.Error("expected a reply")
		}
	})

	t.Run("live technician roster", func(t *testing.T) {
		bundle := chat(t, router, "who is available for electrical work in my city", "user-2")
		if !strings.Contains(bundle.Reply, "Nimal Perera") {
			t.Errorf("expected live roster in reply, got %q", bundle.Reply)
		}
		if bundle.ServiceType != domain.ServiceElectrical {
			t.Errorf("expected electrical, got %q", bundle.ServiceType)
		}
	})

	t.Run("live payment status", func(t *testing.T) {
		bundle := chat(t, router, "payment status for booking "+bookingID, "user-3")
		if bundle.Intent != domain.IntentPayment {
			t.Errorf("expected payment intent, got %q", bundle.Intent)
		}
		if !strings.Contains(bundle.Reply, "completed") || !strings.Contains(bundle.Reply, "CARD") {
			t.Errorf("expected completed payment reply, got %q", bundle.Reply)
		}
	})

	t.Run("booking flow with emergency escalation", func(t *testing.T) {
		bundle := chat(t, router, "i want to book a plumber", "user-4")
		if bundle.SuggestedAction != domain.ActionOpenBookingScreen {
			t.Errorf("expected open_booking_screen, got %q", bundle.SuggestedAction)
		}

		bundle = chat(t, router, "urgent! water flooding everywhere", "user-4")
		if bundle.SuggestedAction != domain.ActionEmergencyBooking || bundle.Priority != domain.PriorityHigh {
			t.Errorf("expected emergency escalation, got %q/%q", bundle.SuggestedAction, bundle.Priority)
		}
	})

	t.Run("context roundtrip over the API", func(t *testing.T) {
		chat(t, router, "i need a plumber", "user-5")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/context/user-5", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var ctx domain.ConversationContext
		if err := json.Unmarshal(rec.Body.Bytes(), &ctx); err != nil {
			t.Fatalf("invalid context response: %v", err)
		}
		if ctx.LastService != domain.ServicePlumbing || len(ctx.Messages) != 1 {
			t.Errorf("unexpected context: %+v", ctx)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/context/user-5", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 on delete, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/context/user-5", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", rec.Code)
		}
	})

	t.Run("healthz reports backends healthy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var status domain.HealthStatus
		if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
			t.Fatalf("invalid healthz response: %v", err)
		}
		if status.Status != "healthy" {
			t.Errorf("expected healthy, got %+v", status)
		}
	})
}

// TestIntegration_BackendDown verifies graceful degradation: the
// assistant keeps answering from its knowledge base when every backend
// call fails.
func TestIntegration_BackendDown(t *testing.T) {
	backend := newBackendServer()
	backendURL := backend.URL
	backend.Close()
	router := newAssistant(backendURL)

	bundle := chat(t, router, "payment status for booking "+bookingID, "user-9")
	if !strings.Contains(bundle.Reply, "unable to connect") {
		t.Errorf("expected degraded payment reply, got %q", bundle.Reply)
	}

	bundle = chat(t, router, "who is available for electrical work in my city", "user-9")
	if !strings.Contains(bundle.Reply, "qualified electrical professionals") {
		t.Errorf("expected generic availability reply, got %q", bundle.Reply)
	}

	bundle = chat(t, router, "hello", "user-9")
	if bundle.Intent != domain.IntentGreeting || bundle.Reply == "" {
		t.Errorf("expected knowledge-base reply while backend is down, got %+v", bundle)
	}
}
