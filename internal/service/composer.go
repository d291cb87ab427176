package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/quickfix/assistant-go/internal/domain"
	"github.com/quickfix/assistant-go/internal/infra/observability"
	"github.com/quickfix/assistant-go/internal/knowledge"
	"github.com/quickfix/assistant-go/internal/port"

	"go.uber.org/zap"
)

// bookingIDPattern recognizes a 24-character hexadecimal booking token
// inside free text. Shape only; the backend validates the rest.
var bookingIDPattern = regexp.MustCompile(`(?i)\b[0-9a-fA-F]{24}\b`)

// TurnInput is everything one strategy may consult for a single turn.
// Context is the pre-update snapshot of the previous turns (nil for a
// brand-new user).
type TurnInput struct {
	Text     string
	Lower    string
	Intent   domain.Intent
	Service  domain.ServiceType
	Language domain.Language
	Context  *domain.ConversationContext
}

// TurnResult is the composed reply plus the side-effect flags the
// orchestrator applies to the context store after the turn.
type TurnResult struct {
	Text           string
	Source         string
	BookingStarted bool
}

// replyStrategy is one stage of the response chain. It fills res and
// returns true to short-circuit, or returns false to pass the turn to
// the next stage.
type replyStrategy struct {
	name string
	run  func(ctx context.Context, in *TurnInput, res *TurnResult) bool
}

// Composer runs the ordered response chain: payment status, booking
// start, technician roster, service topic, open question, domain
// keyword, FAQ, and finally the templated intent reply. The order is
// the priority contract; the final stage always produces a reply.
type Composer struct {
	technicians port.TechnicianFinder
	payments    port.PaymentStatusFetcher
	know        *knowledge.Store
	techCache   port.Cache[[]domain.TechnicianSummary]
	metrics     *observability.Metrics
	logger      *zap.Logger
	techLimit   int

	chain []replyStrategy
}

// NewComposer creates the composer with all dependencies injected.
// techLimit caps how many technicians a roster reply lists.
func NewComposer(
	technicians port.TechnicianFinder,
	payments port.PaymentStatusFetcher,
	know *knowledge.Store,
	techCache port.Cache[[]domain.TechnicianSummary],
	metrics *observability.Metrics,
	logger *zap.Logger,
	techLimit int,
) *Composer {
	c := &Composer{
		technicians: technicians,
		payments:    payments,
		know:        know,
		techCache:   techCache,
		metrics:     metrics,
		logger:      logger,
		techLimit:   techLimit,
	}
	c.chain = []replyStrategy{
		{"payment_status", c.paymentStatusStrategy},
		{"booking_start", c.bookingStartStrategy},
		{"technician_roster", c.technicianRosterStrategy},
		{"service_topic", c.serviceTopicStrategy},
		{"open_question", c.openQuestionStrategy},
		{"domain_keyword", c.domainKeywordStrategy},
		{"faq", c.faqStrategy},
		{"template", c.templateStrategy},
	}
	return c
}

// Compose runs the chain in order and returns the first produced reply.
// External failures inside a stage degrade to friendly text; Compose
// never returns an error to its caller.
func (c *Composer) Compose(ctx context.Context, in TurnInput) TurnResult {
	if in.Lower == "" {
		in.Lower = strings.ToLower(in.Text)
	}

	var res TurnResult
	for _, s := range c.chain {
		if s.run(ctx, &in, &res) {
			res.Source = s.name
			c.metrics.IncrReply(s.name)
			c.logger.Debug("reply composed",
				zap.String("strategy", s.name),
				zap.String("intent", string(in.Intent)),
				zap.String("service", string(in.Service)),
			)
			return res
		}
	}

	// The template stage always answers; this is a safety net only.
	res.Text = templateFor(domain.IntentDefault, in.Language)
	res.Source = "template"
	return res
}
