package handler

import (
	"net/http"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/knowledge"
	"github.com/quickfix/assistant-go/internal/port"
	"github.com/quickfix/assistant-go/internal/service"
)

// intentsHandler lists the intents, service categories and languages
// the assistant understands.
// GET /v1/intents
func intentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"intents":   service.IntentNames(),
			"services":  domain.ServiceTypes,
			"languages": domain.Languages,
		})
	}
}

// faqHandler returns the static FAQ table with all translations.
// GET /v1/faq
func faqHandler(know *knowledge.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"faqs": know.FAQ()})
	}
}

// analyticsHandler reports conversation volume and the per-intent
// message breakdown since process start.
// GET /v1/analytics
func analyticsHandler(contexts port.ContextStore, metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversations, messages := contexts.Stats()

		names := make([]string, 0, len(service.IntentNames()))
		for _, intent := range service.IntentNames() {
			names = append(names, string(intent))
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"totalConversations": conversations,
			"totalMessages":      messages,
			"messagesByIntent":   metrics.MessagesByIntent(names),
			"features": []string{
				"intent_classification",
				"language_detection",
				"service_extraction",
				"contextual_memory",
				"live_technician_lookup",
				"payment_status",
				"faq",
			},
		})
	}
}
