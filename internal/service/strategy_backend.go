package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickfix/assistant-go/internal/domain"

	"go.uber.org/zap"
)

// rosterKeywords is the phrasing that signals the user wants an actual
// technician roster or their location, not a generic profile answer.
var rosterKeywords = []string{"who", "list", "available", "names", "village", "area", "city"}

func asksForRoster(lower string) bool {
	for _, kw := range rosterKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// paymentStatusStrategy answers payment queries that carry a booking id
// by asking the backend for the live payment record. Lookup failures
// degrade to an "unable to connect" reply; they are never surfaced as
// errors.
func (c *Composer) paymentStatusStrategy(ctx context.Context, in *TurnInput, res *TurnResult) bool {
	if in.Intent != domain.IntentPayment {
		return false
	}
	bookingID := bookingIDPattern.FindString(in.Text)
	if bookingID == "" {
		return false
	}

	payment, err := c.payments.GetPaymentStatus(ctx, bookingID)
	if err != nil || payment == nil {
		c.metrics.IncrExternalError("bookings")
		c.logger.Warn("payment status lookup failed",
			zap.String("booking_id", bookingID),
			zap.Error(err),
		)
		res.Text = "⚠️ I'm unable to connect to the booking service right now, so I can't fetch your payment status. Please try again in a few minutes."
		return true
	}

	method := strings.ToUpper(payment.Method)
	switch payment.Status {
	case domain.PaymentCompleted:
		res.Text = fmt.Sprintf("✅ Your payment for booking %s is completed! Paid via %s. Thank you for choosing QuickFix.", bookingID, method)
	case domain.PaymentPending:
		res.Text = fmt.Sprintf("⏳ Your payment for booking %s is still pending (method: %s). It will be confirmed once the service is completed.", bookingID, method)
	default:
		res.Text = fmt.Sprintf("Your payment for booking %s is currently '%s'. Contact support if something looks wrong.", bookingID, payment.Status)
	}
	return true
}

// technicianRosterStrategy answers "who is available / list technicians
// in my area" questions with live backend data. Zero results or a
// failed call fall back to a generic availability message.
func (c *Composer) technicianRosterStrategy(ctx context.Context, in *TurnInput, res *TurnResult) bool {
	if in.Service == "" || !asksForRoster(in.Lower) {
		return false
	}

	techs := c.lookupTechnicians(ctx, in.Service)
	if len(techs) == 0 {
		res.Text = fmt.Sprintf("We have qualified %s professionals available! 👷\n\nTap 'Request Service' in the app and the nearest verified technician will be matched to you automatically.", in.Service.Display())
		return true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are %s technicians available now:\n", in.Service.Display())
	for i, t := range techs {
		if i >= c.techLimit {
			break
		}
		fmt.Fprintf(&b, "\n%d. %s", i+1, t.Name)
		if t.Phone != "" {
			fmt.Fprintf(&b, " ☎ %s", t.Phone)
		}
		if t.DistanceKm > 0 {
			fmt.Fprintf(&b, " (%.1f km away)", t.DistanceKm)
		}
		fmt.Fprintf(&b, " ⭐ %.1f", t.Rating)
		if len(t.Skills) > 0 {
			skills := t.Skills
			if len(skills) > 3 {
				skills = skills[:3]
			}
			fmt.Fprintf(&b, "\n   Skills: %s", strings.Join(skills, ", "))
		}
	}
	b.WriteString("\n\nTap 'Request Service' to book one of them.")
	res.Text = b.String()
	return true
}

// lookupTechnicians fetches availability with a short-lived cache in
// front of the backend call. Any error maps to "no data".
func (c *Composer) lookupTechnicians(ctx context.Context, skill domain.ServiceType) []domain.TechnicianSummary {
	cacheKey := "technicians:" + string(skill)
	if cached, ok := c.techCache.Get(cacheKey); ok {
		c.metrics.IncrCacheHit("technicians")
		return cached
	}
	c.metrics.IncrCacheMiss("technicians")

	techs, err := c.technicians.FindAvailable(ctx, skill, "")
	if err != nil {
		c.metrics.IncrExternalError("technicians")
		c.logger.Warn("technician lookup failed",
			zap.String("skill", string(skill)),
			zap.Error(err),
		)
		return nil
	}
	if len(techs) > 0 {
		c.techCache.Set(cacheKey, techs)
	}
	return techs
}
