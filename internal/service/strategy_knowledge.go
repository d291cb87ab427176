package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/quickfix/assistant-go/internal/domain"
)

// Sub-intent keyword sets for service-topic questions. Checked in this
// order; the first hit wins, anything else renders the general digest.
var (
	qualificationKeywords = []string{"qualified", "qualification", "certified", "experience", "skill", "trained", "profile", "verify"}
	costKeywords          = []string{"cost", "price", "charge", "fee", "how much", "rate", "expensive"}
	problemKeywords       = []string{"problem", "repair", "fix", "broken", "issue", "not working", "damage"}
	tipKeywords           = []string{"tip", "advice", "prevent", "maintain", "avoid"}
	emergencyKeywords     = []string{"emergency", "urgent", "danger", "immediately", "serious"}
)

// rawDomainKeywords backs the last-resort keyword scan (chain step
// before the FAQ). Broader than the extractor's table so messages the
// extractor missed can still land on a service digest. Declaration
// order is the precedence.
var rawDomainKeywords = []serviceKeywords{
	{domain.ServicePlumbing, []string{"leak", "water", "pipe", "drip", "drain", "flooding"}},
	{domain.ServiceElectrical, []string{"power", "wiring", "current", "voltage", "shock"}},
	{domain.ServiceCarpentry, []string{"wood", "furniture", "hinge"}},
	{domain.ServicePainting, []string{"paint", "varnish"}},
	{domain.ServiceCleaning, []string{"dust", "dirty", "mold"}},
	{domain.ServiceApplianceRepair, []string{"fridge", "machine", "oven"}},
	{domain.ServiceHVAC, []string{"cooling", "air con", "chill"}},
	{domain.ServiceLocksmith, []string{"locked", "key"}},
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// bookingStartStrategy opens a booking flow when the user both wants to
// book and named a service. It marks the turn so the orchestrator sets
// bookingInProgress on the stored context.
func (c *Composer) bookingStartStrategy(_ context.Context, in *TurnInput, res *TurnResult) bool {
	if in.Intent != domain.IntentBooking || in.Service == "" {
		return false
	}

	res.BookingStarted = true
	res.Text = fmt.Sprintf(
		"Great choice! Let's get a %s technician to you. 📅\n\nTo create the booking I need four things:\n1. Service: %s ✓\n2. Location: your area or village\n3. Urgency: emergency / today / this week\n4. Description: one line about the problem\n\nReply with your location and I'll take it from there.",
		in.Service.Display(), in.Service.Display(),
	)
	return true
}

// serviceTopicStrategy answers questions about a known service from the
// knowledge record. The sub-intent decides which section is rendered.
// Qualification keywords are skipped when the phrasing also asks for a
// roster, so roster intent always beats profile intent.
func (c *Composer) serviceTopicStrategy(_ context.Context, in *TurnInput, res *TurnResult) bool {
	if in.Service == "" {
		return false
	}
	rec := c.know.Service(in.Service)
	if rec == nil {
		return false
	}

	switch {
	case !asksForRoster(in.Lower) && containsAny(in.Lower, qualificationKeywords):
		res.Text = renderProfile(rec)
	case containsAny(in.Lower, costKeywords):
		res.Text = fmt.Sprintf("💰 %s service:\n• Typical cost: %s\n• Typical duration: %s\n\nYou'll always get an estimate before confirming the booking.",
			titleCase(rec.Service.Display()), rec.AvgCostRange, rec.AvgDuration)
	case containsAny(in.Lower, problemKeywords):
		res.Text = fmt.Sprintf("Common %s problems we fix:\n%s\n\nOur verified technicians handle all of these. Want me to book one?",
			rec.Service.Display(), bulletList(rec.CommonIssues))
	case containsAny(in.Lower, tipKeywords):
		res.Text = fmt.Sprintf("💡 %s tips:\n%s", titleCase(rec.Service.Display()), bulletList(rec.Tips))
	case containsAny(in.Lower, emergencyKeywords):
		res.Text = fmt.Sprintf("🚨 Call for %s help right away if you notice:\n%s\n\nSay 'emergency' and I'll prioritize your booking.",
			rec.Service.Display(), bulletList(rec.EmergencySigns))
	default:
		res.Text = renderGeneral(rec)
	}
	return true
}

// openQuestionStrategy handles broad what/how/when/where questions that
// have fixed answers. Other question words fall through to the next
// stage.
func (c *Composer) openQuestionStrategy(_ context.Context, in *TurnInput, res *TurnResult) bool {
	lower := strings.TrimSpace(in.Lower)

	switch {
	case strings.HasPrefix(lower, "how") && strings.Contains(lower, "much"):
		res.Text = c.renderPriceTable()
	case strings.HasPrefix(lower, "when"):
		res.Text = "🕐 Service Hours:\n• Regular: 8 AM - 8 PM\n• Emergency: 24/7 available\n\nEmergency services may have additional charges."
	case strings.HasPrefix(lower, "where"):
		res.Text = "We currently serve:\n📍 Colombo and suburbs\n📍 Gampaha\n📍 Kandy\n📍 Galle\n\nExpanding to more areas soon!"
	default:
		return false
	}
	return true
}

// domainKeywordStrategy is the last content-bearing stage: a raw scan
// for domain words that the extractor missed, answering with the
// general digest of the matched service.
func (c *Composer) domainKeywordStrategy(_ context.Context, in *TurnInput, res *TurnResult) bool {
	for _, entry := range rawDomainKeywords {
		if containsAny(in.Lower, entry.keywords) {
			if rec := c.know.Service(entry.service); rec != nil {
				res.Text = renderGeneral(rec)
				return true
			}
		}
	}
	return false
}

// renderPriceTable lists the typical cost of every service category.
func (c *Composer) renderPriceTable() string {
	var b strings.Builder
	b.WriteString("💰 Typical QuickFix prices:\n")
	for _, svc := range domain.ServiceTypes {
		rec := c.know.Service(svc)
		if rec == nil {
			continue
		}
		fmt.Fprintf(&b, "• %s: %s (%s)\n", titleCase(svc.Display()), rec.AvgCostRange, rec.AvgDuration)
	}
	b.WriteString("\nEmergency work carries a +50% surcharge. You'll get an exact estimate before confirming.")
	return b.String()
}

// renderGeneral is the 4-issue digest plus cost, duration and a booking
// nudge.
func renderGeneral(rec *domain.KnowledgeRecord) string {
	issues := rec.CommonIssues
	if len(issues) > 4 {
		issues = issues[:4]
	}
	return fmt.Sprintf("%s\n\nWe commonly help with:\n%s\n\n• Typical cost: %s\n• Typical duration: %s\n\nWant me to book a %s technician for you?",
		rec.Description, bulletList(issues), rec.AvgCostRange, rec.AvgDuration, rec.Service.Display())
}

// renderProfile describes the technician sent for a service category.
func renderProfile(rec *domain.KnowledgeRecord) string {
	p := rec.TechnicianProfile
	return fmt.Sprintf("👷 Our %s technicians:\n\nQualifications:\n%s\n\nSkills:\n%s\n\nThey arrive with: %s.\n\n%s",
		rec.Service.Display(), bulletList(p.Qualifications), bulletList(p.Skills),
		strings.Join(p.Tools, ", "), p.VerificationStatement)
}

// titleCase uppercases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func bulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• ")
		b.WriteString(item)
	}
	return b.String()
}
