package handler

import (
	"net/http"

	"github.com/quickfix/assistant-go/internal/port"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// getContextHandler returns the stored conversation context for a user.
// GET /v1/context/{userId}
func getContextHandler(contexts port.ContextStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "userId is required")
			return
		}

		userCtx := contexts.Get(userID)
		if userCtx == nil {
			writeError(w, http.StatusNotFound, "no conversation context for user: "+userID)
			return
		}
		writeJSON(w, http.StatusOK, userCtx)
	}
}

// deleteContextHandler forgets a user's conversation context. Deleting
// an unknown user is not an error; the response reports whether
// anything was removed.
// DELETE /v1/context/{userId}
func deleteContextHandler(contexts port.ContextStore, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userId")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "userId is required")
			return
		}

		existed := contexts.Delete(userID)
		if existed {
			logger.Info("conversation context deleted", zap.String("user_id", userID))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"userId":  userID,
			"deleted": existed,
		})
	}
}
