package service

import (
	"context"
	"fmt"

	"github.com/quickfix/assistant-go/internal/domain"
)

// faqStrategy consults the static FAQ table once every content-bearing
// stage has passed on the turn.
func (c *Composer) faqStrategy(_ context.Context, in *TurnInput, res *TurnResult) bool {
	answer := c.know.SearchFAQ(in.Text, in.Language)
	if answer == "" {
		return false
	}
	res.Text = answer
	return true
}

// templateStrategy is the terminal stage: it renders the canned reply
// for the classified intent and always produces. When the turn fell all
// the way to the default template and the user has a remembered
// service, a one-line nudge referencing it is appended.
func (c *Composer) templateStrategy(_ context.Context, in *TurnInput, res *TurnResult) bool {
	res.Text = templateFor(in.Intent, in.Language)

	if in.Intent == domain.IntentDefault && in.Context != nil && in.Context.LastService != "" {
		svc := in.Context.LastService.Display()
		res.Text += fmt.Sprintf("\n\n💡 Earlier you were asking about %s. Want me to book a %s technician?", svc, svc)
	}
	return true
}
