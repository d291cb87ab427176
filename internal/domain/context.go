package domain

import "time"

// HistoryLimit caps the per-user message history kept in memory.
const HistoryLimit = 10

// Message is a single user utterance remembered in the conversation history.
type Message struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationContext is the per-user mutable memory across turns.
// It is advisory only: the pipeline produces a valid reply without it,
// the context merely flavors fallback responses.
type ConversationContext struct {
	UserID            string      `json:"userId"`
	LastIntent        Intent      `json:"lastIntent,omitempty"`
	LastService       ServiceType `json:"lastService,omitempty"`
	BookingInProgress bool        `json:"bookingInProgress"`
	Messages          []Message   `json:"messages"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// ContextUpdate carries one turn's mutations, applied by the store
// after the reply has been composed. Zero-valued fields leave the
// corresponding context field untouched (values are never cleared).
type ContextUpdate struct {
	Intent         Intent
	Service        ServiceType
	MessageText    string
	BookingStarted bool
}
