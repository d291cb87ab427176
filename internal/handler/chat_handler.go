package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/service"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// chatHandler runs one conversation turn.
// POST /v1/chat with { message, userId?, sessionId? }.
func chatHandler(svc *service.ChatService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/chat")
		defer span.End()

		var req domain.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}

		userID := req.UserID
		if userID == "" {
			userID = "anonymous"
		}
		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		span.SetAttributes(attribute.String("user.id", userID))

		bundle, err := svc.ProcessMessage(ctx, userID, sessionID, req.Message)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, bundle)
	}
}
