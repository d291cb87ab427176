package domain

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	UserID    string `json:"userId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// ReplyBundle is the composed reply plus structured metadata for one turn.
// This is the shape handed back to the HTTP layer and serialized as-is.
type ReplyBundle struct {
	Reply           string             `json:"reply"`
	Intent          Intent             `json:"intent"`
	Language        Language           `json:"language"`
	ServiceType     ServiceType        `json:"serviceType,omitempty"`
	SuggestedAction string             `json:"suggestedAction,omitempty"`
	Priority        string             `json:"priority,omitempty"`
	SessionID       string             `json:"sessionId"`
	Timestamp       string             `json:"timestamp"`
	Stats           *ConversationStats `json:"conversationStats,omitempty"`
}

// Suggested actions derived by the turn orchestrator.
const (
	ActionBookService       = "book_service"
	ActionOpenBookingScreen = "open_booking_screen"
	ActionEmergencyBooking  = "emergency_booking"
)

// PriorityHigh is set only on emergency turns.
const PriorityHigh = "high"

// ConversationStats is the per-user counters echoed with each reply.
type ConversationStats struct {
	MessageCount      int         `json:"messageCount"`
	BookingInProgress bool        `json:"bookingInProgress"`
	KnownService      ServiceType `json:"knownService,omitempty"`
}
