// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/quickfix/assistant-go/internal/domain"
)

// TechnicianFinder retrieves live technician availability from the
// booking backend.
type TechnicianFinder interface {
	FindAvailable(ctx context.Context, skill domain.ServiceType, location string) ([]domain.TechnicianSummary, error)
}

// PaymentStatusFetcher retrieves the payment record of a booking from
// the booking backend.
type PaymentStatusFetcher interface {
	GetPaymentStatus(ctx context.Context, bookingID string) (*domain.PaymentInfo, error)
}

// ContextStore is the per-user conversation memory. Implementations are
// process-wide shared state; concurrent updates for the same user id are
// last-writer-wins, which is acceptable because context is advisory.
type ContextStore interface {
	// GetOrCreate returns the context for userID, creating it lazily on
	// first contact. Creation is idempotent.
	GetOrCreate(userID string) *domain.ConversationContext

	// Get returns the context for userID, or nil when none exists.
	Get(userID string) *domain.ConversationContext

	// Update applies one turn's mutations: appends the message to the
	// bounded history and overwrites lastIntent/lastService when the
	// update carries non-zero values. It never clears stored values.
	Update(userID string, upd domain.ContextUpdate)

	// Delete removes the context and reports whether one existed.
	Delete(userID string) bool

	// Stats returns the number of live conversations and the total
	// message count observed across all users.
	Stats() (conversations int, messages int64)
}

// Normalizer is an optional linguistic preprocessor (case folding,
// whitespace cleanup, stopword stripping). The pipeline must behave
// identically whether or not one is configured.
type Normalizer interface {
	Normalize(text string) string
}

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
