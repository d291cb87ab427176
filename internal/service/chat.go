package service

import (
	"context"
	"strings"
	"time"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("service/chat")

// ChatService is the turn orchestrator: it runs language detection,
// intent classification and service extraction, hands the turn to the
// composer with the pre-update context, applies the context mutation,
// and shapes the reply bundle for the HTTP layer.
type ChatService struct {
	composer   *Composer
	contexts   port.ContextStore
	normalizer port.Normalizer // optional; nil means no preprocessing
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewChatService creates the chat service with all dependencies
// injected. normalizer may be nil; the pipeline behaves identically
// without it.
func NewChatService(
	composer *Composer,
	contexts port.ContextStore,
	normalizer port.Normalizer,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		composer:   composer,
		contexts:   contexts,
		normalizer: normalizer,
		metrics:    metrics,
		logger:     logger,
	}
}

// ProcessMessage runs one request/response cycle for a user message.
// The only error condition is an empty message; every other situation
// resolves to some textual reply.
func (s *ChatService) ProcessMessage(ctx context.Context, userID, sessionID, message string) (*domain.ReplyBundle, error) {
	ctx, span := tracer.Start(ctx, "ChatService.ProcessMessage")
	defer span.End()
	span.SetAttributes(attribute.String("user.id", userID))

	start := time.Now()
	defer func() {
		s.metrics.RecordRequestDuration("chat", time.Since(start))
	}()

	if strings.TrimSpace(message) == "" {
		s.metrics.IncrRequest("invalid")
		return nil, &domain.ErrValidation{Field: "message", Message: "message is required"}
	}

	// Language detection always sees the raw text so that script
	// detection is unaffected by any normalization.
	language := DetectLanguage(message)

	normalized := message
	if s.normalizer != nil {
		normalized = s.normalizer.Normalize(message)
	}

	intent := ClassifyIntent(normalized)
	service := ExtractServiceType(normalized)

	s.logger.Info("message classified",
		zap.String("user_id", userID),
		zap.String("intent", string(intent)),
		zap.String("language", string(language)),
		zap.String("service", string(service)),
		zap.Int("message_length", len(message)),
	)
	s.metrics.IncrMessage(string(intent))

	// The composer sees the context as it was before this turn, so a
	// fallback nudge reflects the previous turn, not the current one.
	preCtx := s.contexts.Get(userID)

	result := s.composer.Compose(ctx, TurnInput{
		Text:     message,
		Lower:    strings.ToLower(normalized),
		Intent:   intent,
		Service:  service,
		Language: language,
		Context:  preCtx,
	})

	upd := domain.ContextUpdate{
		Service:        service,
		MessageText:    message,
		BookingStarted: result.BookingStarted,
	}
	if intent != domain.IntentDefault {
		// The default sentinel means "nothing matched"; it never
		// overwrites a remembered intent.
		upd.Intent = intent
	}
	s.contexts.Update(userID, upd)

	userCtx := s.contexts.GetOrCreate(userID)
	action, priority := deriveAction(intent, service)

	s.metrics.IncrRequest("success")
	return &domain.ReplyBundle{
		Reply:           result.Text,
		Intent:          intent,
		Language:        language,
		ServiceType:     service,
		SuggestedAction: action,
		Priority:        priority,
		SessionID:       sessionID,
		Timestamp:       time.Now().Format(time.RFC3339),
		Stats: &domain.ConversationStats{
			MessageCount:      len(userCtx.Messages),
			BookingInProgress: userCtx.BookingInProgress,
			KnownService:      userCtx.LastService,
		},
	}, nil
}

// deriveAction maps the turn's intent and service to the suggested
// client action. Later rules override earlier ones: a resolved service
// suggests booking it, an explicit booking intent opens the booking
// screen, and an emergency overrides everything and raises priority.
func deriveAction(intent domain.Intent, service domain.ServiceType) (action, priority string) {
	if service != "" {
		action = domain.ActionBookService
	}
	if intent == domain.IntentBooking {
		action = domain.ActionOpenBookingScreen
	}
	if intent == domain.IntentEmergency {
		action = domain.ActionEmergencyBooking
		priority = domain.PriorityHigh
	}
	return action, priority
}
