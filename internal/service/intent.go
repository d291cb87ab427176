package service

import (
	"regexp"
	"strings"

	"github.com/quickfix/assistant-go/internal/domain"
)

// intentDef pairs an intent with its detection pattern set. Patterns
// mix literal alternations and language-specific fixed phrases, all
// matched against the lower-cased message.
type intentDef struct {
	name     domain.Intent
	patterns []*regexp.Regexp
}

// intentTable is the fixed, insertion-ordered intent list. The order is
// a contract: when two intents score equally, the earlier entry wins,
// and callers depend on that being reproducible. Do not reorder.
var intentTable = []intentDef{
	{domain.IntentGreeting, compileAll(
		`\b(hi|hello|hey|good morning|good afternoon|good evening)\b`,
		`හායි`, `හෙලෝ`,
		`வணக்கம்`,
	)},
	{domain.IntentEmergency, compileAll(
		`\b(emergency|urgent|asap|immediately|quick|fast|help)\b`,
		`\b(leak|flooding|fire|shock|broken|not working)\b`,
		`දැන්ම`, `ඉක්මනින්`,
		`உடனடி`,
	)},
	{domain.IntentBooking, compileAll(
		`\b(book|schedule|appointment|need|want|looking for)\b`,
		`\b(technician|plumber|electrician|carpenter)\b`,
		`බුකින්`, `තාක්ෂණික`,
		`பதிவு`,
	)},
	{domain.IntentPricing, compileAll(
		`\b(cost|price|charge|fee|how much|rate)\b`,
		`විය`, `ගාස්තුව`,
		`விலை`,
	)},
	{domain.IntentPayment, compileAll(
		`\b(pay|paid|payment|refund|receipt|invoice)\b`,
		`ගෙවීම`,
		`கட்டணம்`,
	)},
	{domain.IntentStatus, compileAll(
		`\b(status|where|location|track|eta|arriving)\b`,
		`ස්ථානය`,
		`நிலை`,
	)},
	{domain.IntentCancel, compileAll(
		`\b(cancel|stop|abort|don't want)\b`,
		`අවලංගු`,
		`ரத்து`,
	)},
	{domain.IntentComplaint, compileAll(
		`\b(complaint|issue|problem|not satisfied|bad|poor)\b`,
		`ගැටලුව`,
		`பிரச்சினை`,
	)},
	{domain.IntentRating, compileAll(
		`\b(rate|rating|review|stars|feedback)\b`,
		`ඇගයීම`,
		`மதிப்பீடு`,
	)},
	{domain.IntentThanks, compileAll(
		`\b(thank|thanks|appreciate)\b`,
		`ස්තූතියි`,
		`நன்றி`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// ClassifyIntent scores the text against every intent's pattern set and
// returns the intent whose set has the strictly highest number of
// matching patterns. Equal scores resolve to the earlier intentTable
// entry; zero matches resolve to IntentDefault. Unmatched text never
// errors.
func ClassifyIntent(text string) domain.Intent {
	lower := strings.ToLower(text)

	best := domain.IntentDefault
	bestScore := 0
	for _, def := range intentTable {
		score := 0
		for _, p := range def.patterns {
			if p.MatchString(lower) {
				score++
			}
		}
		if score > bestScore {
			best = def.name
			bestScore = score
		}
	}
	return best
}

// IntentNames returns the classifiable intent names in table order,
// used by the GET /v1/intents endpoint.
func IntentNames() []domain.Intent {
	out := make([]domain.Intent, 0, len(intentTable))
	for _, def := range intentTable {
		out = append(out, def.name)
	}
	return out
}
