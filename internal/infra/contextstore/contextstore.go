// Package contextstore provides the in-memory per-user conversation
// memory. Contexts are created lazily on first contact and live for the
// process lifetime; nothing expires and nothing is persisted.
package contextstore

import (
	"sync"
	"time"

	"github.com/quickfix/assistant-go/internal/domain"
)

// InMemory is a thread-safe map of user id to conversation context.
// Concurrent updates for the same user are last-writer-wins; context is
// advisory, so no stronger ordering is needed.
type InMemory struct {
	mu            sync.RWMutex
	contexts      map[string]*domain.ConversationContext
	totalMessages int64
}

// New creates an empty store.
func New() *InMemory {
	return &InMemory{contexts: make(map[string]*domain.ConversationContext)}
}

// GetOrCreate returns a snapshot of the context for userID, creating an
// empty one on first contact. Creation is idempotent.
func (s *InMemory) GetOrCreate(userID string) *domain.ConversationContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.getOrCreateLocked(userID))
}

// Get returns a snapshot of the context for userID, or nil when the
// user has never been seen.
func (s *InMemory) Get(userID string) *domain.ConversationContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ctx, ok := s.contexts[userID]
	if !ok {
		return nil
	}
	return snapshot(ctx)
}

// Update applies one turn's mutations. The message is appended to the
// history (oldest entries beyond the cap are dropped), and lastIntent /
// lastService are overwritten only by non-zero values. Stored values
// are never cleared.
func (s *InMemory) Update(userID string, upd domain.ContextUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := s.getOrCreateLocked(userID)

	if upd.MessageText != "" {
		ctx.Messages = append(ctx.Messages, domain.Message{
			Text:      upd.MessageText,
			Timestamp: time.Now(),
		})
		if excess := len(ctx.Messages) - domain.HistoryLimit; excess > 0 {
			ctx.Messages = ctx.Messages[excess:]
		}
		s.totalMessages++
	}
	if upd.Intent != "" {
		ctx.LastIntent = upd.Intent
	}
	if upd.Service != "" {
		ctx.LastService = upd.Service
	}
	if upd.BookingStarted {
		ctx.BookingInProgress = true
	}
}

// Delete removes the context and reports whether one existed.
func (s *InMemory) Delete(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.contexts[userID]
	delete(s.contexts, userID)
	return ok
}

// Stats returns the number of live conversations and the total message
// count observed since startup.
func (s *InMemory) Stats() (int, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contexts), s.totalMessages
}

func (s *InMemory) getOrCreateLocked(userID string) *domain.ConversationContext {
	ctx, ok := s.contexts[userID]
	if !ok {
		ctx = &domain.ConversationContext{
			UserID:    userID,
			Messages:  []domain.Message{},
			CreatedAt: time.Now(),
		}
		s.contexts[userID] = ctx
	}
	return ctx
}

// snapshot copies the context so callers cannot mutate stored state.
func snapshot(ctx *domain.ConversationContext) *domain.ConversationContext {
	cp := *ctx
	cp.Messages = make([]domain.Message, len(ctx.Messages))
	copy(cp.Messages, ctx.Messages)
	return &cp
}
