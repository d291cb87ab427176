package service

import (
	"testing"

	"github.com/quickfix/assistant-go/internal/domain"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Intent
	}{
		{"greeting", "hello there", domain.IntentGreeting},
		{"greeting sinhala", "හායි", domain.IntentGreeting},
		{"greeting tamil", "வணக்கம்", domain.IntentGreeting},
		{"emergency", "urgent! water is flooding the kitchen, help", domain.IntentEmergency},
		{"booking beats emergency on score", "i want to book a plumber", domain.IntentBooking},
		{"booking sinhala", "බුකින් එකක් දාන්න", domain.IntentBooking},
		{"pricing", "what is the cost of a visit", domain.IntentPricing},
		{"payment", "i already paid, send my receipt", domain.IntentPayment},
		{"status", "track my booking please", domain.IntentStatus},
		{"cancel", "please cancel it", domain.IntentCancel},
		{"complaint", "i have a complaint about the poor work", domain.IntentComplaint},
		{"rating", "five stars, great job... here is my feedback", domain.IntentRating},
		{"thanks", "thank you so so much", domain.IntentThanks},
		{"no match", "qqq zzz", domain.IntentDefault},
		{"empty", "", domain.IntentDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.text); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Equal scores must resolve to the earlier table entry, and the
// resolution must be stable across calls.
func TestClassifyIntent_TieBreaksByTableOrder(t *testing.T) {
	// "help" scores 1 for emergency, "book" scores 1 for booking;
	// emergency is declared first.
	const text = "help me book"
	for i := 0; i < 10; i++ {
		if got := ClassifyIntent(text); got != domain.IntentEmergency {
			t.Fatalf("ClassifyIntent(%q) = %q on run %d, want %q", text, got, i, domain.IntentEmergency)
		}
	}
}

func TestIntentNames_Order(t *testing.T) {
	names := IntentNames()
	want := []domain.Intent{
		domain.IntentGreeting,
		domain.IntentEmergency,
		domain.IntentBooking,
		domain.IntentPricing,
		domain.IntentPayment,
		domain.IntentStatus,
		domain.IntentCancel,
		domain.IntentComplaint,
		domain.IntentRating,
		domain.IntentThanks,
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d intents, got %d", len(want), len(names))
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("intent %d: expected %q, got %q", i, n, names[i])
		}
	}
}
