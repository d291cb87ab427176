package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/cache"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/knowledge"

	"go.uber.org/zap"
)

// --- Mocks ---

type stubTechnicians struct {
	techs []domain.TechnicianSummary
	err   error
	calls int
}

func (s *stubTechnicians) FindAvailable(_ context.Context, _ domain.ServiceType, _ string) ([]domain.TechnicianSummary, error) {
	s.calls++
	return s.techs, s.err
}

type stubPayments struct {
	info *domain.PaymentInfo
	err  error
}

func (s *stubPayments) GetPaymentStatus(_ context.Context, _ string) (*domain.PaymentInfo, error) {
	return s.info, s.err
}

func newTestComposer(techs *stubTechnicians, pays *stubPayments) *Composer {
	return NewComposer(
		techs,
		pays,
		knowledge.NewStore(),
		cache.New[[]domain.TechnicianSummary](time.Minute),
		observability.NewMetrics(),
		zap.NewNop(),
		5,
	)
}

const testBookingID = "507f1f77bcf86cd799439011"

// --- Tests ---

func TestCompose_PaymentStatus(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		c := newTestComposer(&stubTechnicians{}, &stubPayments{
			info: &domain.PaymentInfo{Status: domain.PaymentCompleted, Method: "card"},
		})
		res := c.Compose(context.Background(), TurnInput{
			Text:   "did my payment go through? booking " + testBookingID,
			Intent: domain.IntentPayment,
		})
		if res.Source != "payment_status" {
			t.Fatalf("expected payment_status source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "completed") || !strings.Contains(res.Text, "CARD") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("pending", func(t *testing.T) {
		c := newTestComposer(&stubTechnicians{}, &stubPayments{
			info: &domain.PaymentInfo{Status: domain.PaymentPending, Method: "cash"},
		})
		res := c.Compose(context.Background(), TurnInput{
			Text:   "payment for " + testBookingID,
			Intent: domain.IntentPayment,
		})
		if !strings.Contains(res.Text, "pending") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("backend down degrades to apology", func(t *testing.T) {
		c := newTestComposer(&stubTechnicians{}, &stubPayments{err: errors.New("connection refused")})
		res := c.Compose(context.Background(), TurnInput{
			Text:   "payment for " + testBookingID,
			Intent: domain.IntentPayment,
		})
		if res.Source != "payment_status" {
			t.Fatalf("expected payment_status source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "unable to connect") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("no booking id falls through to template", func(t *testing.T) {
		c := newTestComposer(&stubTechnicians{}, &stubPayments{})
		res := c.Compose(context.Background(), TurnInput{
			Text:     "refund please",
			Intent:   domain.IntentPayment,
			Language: domain.LangEnglish,
		})
		if res.Source != "template" {
			t.Fatalf("expected template source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "booking ID") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})
}

func TestCompose_BookingStart(t *testing.T) {
	c := newTestComposer(&stubTechnicians{}, &stubPayments{})
	res := c.Compose(context.Background(), TurnInput{
		Text:    "book a plumber for tomorrow",
		Intent:  domain.IntentBooking,
		Service: domain.ServicePlumbing,
	})
	if res.Source != "booking_start" {
		t.Fatalf("expected booking_start source, got %q", res.Source)
	}
	if !res.BookingStarted {
		t.Error("expected BookingStarted to be set")
	}
	if !strings.Contains(res.Text, "plumbing") || !strings.Contains(res.Text, "Location") {
		t.Errorf("unexpected reply: %q", res.Text)
	}
}

func TestCompose_TechnicianRoster(t *testing.T) {
	techs := []domain.TechnicianSummary{
		{Name: "Nimal Perera", Phone: "0771234567", Rating: 4.8, Skills: []string{"wiring", "panels", "lighting", "solar"}, DistanceKm: 2.3},
		{Name: "Kumar Raj", Rating: 4.5},
		{Name: "T3", Rating: 4.0},
		{Name: "T4", Rating: 4.0},
		{Name: "T5", Rating: 4.0},
		{Name: "T6", Rating: 4.0},
		{Name: "T7", Rating: 4.0},
	}

	t.Run("lists capped roster", func(t *testing.T) {
		c := newTestComposer(&stubTechnicians{techs: techs}, &stubPayments{})
		res := c.Compose(context.Background(), TurnInput{
			Text:    "who is available in my area",
			Intent:  domain.IntentDefault,
			Service: domain.ServiceElectrical,
		})
		if res.Source != "technician_roster" {
			t.Fatalf("expected technician_roster source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "Nimal Perera") || !strings.Contains(res.Text, "0771234567") {
			t.Errorf("expected first technician details, got %q", res.Text)
		}
		if !strings.Contains(res.Text, "5. T5") {
			t.Errorf("expected fifth entry, got %q", res.Text)
		}
		if strings.Contains(res.Text, "6. T6") {
			t.Errorf("roster should be capped at 5 entries, got %q", res.Text)
		}
		if !strings.Contains(res.Text, "wiring, panels, lighting") || strings.Contains(res.Text, "solar") {
			t.Errorf("skills should be capped at 3, got %q", res.Text)
		}
	})

	t.Run("backend failure degrades to generic availability", func(t *testing.T) {
		c := newTestComposer(&stubTechnicians{err: errors.New("boom")}, &stubPayments{})
		res := c.Compose(context.Background(), TurnInput{
			Text:    "list electricians near me",
			Intent:  domain.IntentDefault,
			Service: domain.ServiceElectrical,
		})
		if res.Source != "technician_roster" {
			t.Fatalf("expected technician_roster source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "qualified electrical professionals") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("second lookup is served from cache", func(t *testing.T) {
		stub := &stubTechnicians{techs: techs}
		c := newTestComposer(stub, &stubPayments{})
		in := TurnInput{
			Text:    "who is available in my area",
			Intent:  domain.IntentDefault,
			Service: domain.ServiceElectrical,
		}
		c.Compose(context.Background(), in)
		c.Compose(context.Background(), in)
		if stub.calls != 1 {
			t.Errorf("expected 1 backend call, got %d", stub.calls)
		}
	})
}

func TestCompose_ServiceTopic(t *testing.T) {
	c := newTestComposer(&stubTechnicians{}, &stubPayments{})

	t.Run("cost question", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:    "plumbing cost?",
			Intent:  domain.IntentPricing,
			Service: domain.ServicePlumbing,
		})
		if res.Source != "service_topic" {
			t.Fatalf("expected service_topic source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "Typical cost") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("qualification question renders profile", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:    "are your plumbers qualified",
			Intent:  domain.IntentDefault,
			Service: domain.ServicePlumbing,
		})
		if res.Source != "service_topic" {
			t.Fatalf("expected service_topic source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "Qualifications") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("emergency phrasing renders warning signs", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:    "urgent plumbing needed",
			Intent:  domain.IntentEmergency,
			Service: domain.ServicePlumbing,
		})
		if !strings.Contains(res.Text, "right away") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})
}

func TestCompose_OpenQuestions(t *testing.T) {
	c := newTestComposer(&stubTechnicians{}, &stubPayments{})

	t.Run("how much renders the price table", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:   "how much will this set me back",
			Intent: domain.IntentPricing,
		})
		if res.Source != "open_question" {
			t.Fatalf("expected open_question source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "Typical QuickFix prices") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("when renders service hours", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:   "when do you open",
			Intent: domain.IntentDefault,
		})
		if res.Source != "open_question" {
			t.Fatalf("expected open_question source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "8 AM - 8 PM") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})
}

func TestCompose_DomainKeyword(t *testing.T) {
	c := newTestComposer(&stubTechnicians{}, &stubPayments{})
	res := c.Compose(context.Background(), TurnInput{
		Text:   "there is a drip in the ceiling",
		Intent: domain.IntentDefault,
	})
	if res.Source != "domain_keyword" {
		t.Fatalf("expected domain_keyword source, got %q", res.Source)
	}
	if !strings.Contains(res.Text, "plumbing technician") {
		t.Errorf("expected plumbing digest, got %q", res.Text)
	}
}

func TestCompose_FAQ(t *testing.T) {
	c := newTestComposer(&stubTechnicians{}, &stubPayments{})

	t.Run("english answer", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:     "what payment methods do you accept",
			Intent:   domain.IntentDefault,
			Language: domain.LangEnglish,
		})
		if res.Source != "faq" {
			t.Fatalf("expected faq source, got %q", res.Source)
		}
		if !strings.Contains(res.Text, "Cash on completion") {
			t.Errorf("unexpected reply: %q", res.Text)
		}
	})

	t.Run("localized answer", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:     "what payment methods do you accept",
			Intent:   domain.IntentDefault,
			Language: domain.LangSinhala,
		})
		if !strings.Contains(res.Text, "ක්‍රෙඩිට්") {
			t.Errorf("expected sinhala answer, got %q", res.Text)
		}
	})
}

func TestCompose_TemplateFallback(t *testing.T) {
	c := newTestComposer(&stubTechnicians{}, &stubPayments{})

	t.Run("plain fallback", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:     "qqq zzz",
			Intent:   domain.IntentDefault,
			Language: domain.LangEnglish,
		})
		if res.Source != "template" {
			t.Fatalf("expected template source, got %q", res.Source)
		}
		if strings.Contains(res.Text, "Earlier you were asking") {
			t.Errorf("nudge should not appear without a remembered service: %q", res.Text)
		}
	})

	t.Run("nudge for remembered service", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:     "qqq zzz",
			Intent:   domain.IntentDefault,
			Language: domain.LangEnglish,
			Context:  &domain.ConversationContext{LastService: domain.ServicePlumbing},
		})
		if !strings.Contains(res.Text, "Earlier you were asking about plumbing") {
			t.Errorf("expected nudge, got %q", res.Text)
		}
	})

	t.Run("nudge uses the display form of the service", func(t *testing.T) {
		res := c.Compose(context.Background(), TurnInput{
			Text:     "qqq zzz",
			Intent:   domain.IntentDefault,
			Language: domain.LangEnglish,
			Context:  &domain.ConversationContext{LastService: domain.ServiceHVAC},
		})
		if !strings.Contains(res.Text, "hvac") {
			t.Errorf("expected hvac nudge, got %q", res.Text)
		}
	})
}
