package knowledge

import (
	"strings"

	"github.com/quickfix/assistant-go/internal/domain"
)

// SearchFAQ scans the FAQ table in declaration order and returns the
// answer of the first entry whose question key shares a word with the
// query, in the requested language (falling back to English).
// Returns "" when nothing matches.
//
// Matching is deliberately loose: any single word of the key appearing
// as a substring of the lower-cased query is a hit.
func (s *Store) SearchFAQ(text string, lang domain.Language) string {
	lower := strings.ToLower(text)

	for _, entry := range s.faq {
		for _, word := range strings.Fields(entry.QuestionKey) {
			if strings.Contains(lower, word) {
				if answer, ok := entry.Answers[lang]; ok && answer != "" {
					return answer
				}
				return entry.Answers[domain.LangEnglish]
			}
		}
	}
	return ""
}

var faqTable = []domain.FAQEntry{
	{
		QuestionKey: "how to book",
		Answers: map[domain.Language]string{
			domain.LangEnglish: "To book a service:\n1. Tap 'Request Service' button\n2. Select service type\n3. Choose location\n4. Select urgency level\n5. Confirm booking\n\nA nearby technician will be matched automatically!",
			domain.LangSinhala: "සේවාවක් වෙන්කරවා ගැනීමට:\n1. 'සේවාව ඉල්ලන්න' බොත්තම තට්ටු කරන්න",
			domain.LangTamil:   "சேவையை பதிவு செய்ய:\n1. 'சேவை கோரிக்கை' பொத்தானை அழுத்தவும்",
		},
	},
	{
		QuestionKey: "payment methods",
		Answers: map[domain.Language]string{
			domain.LangEnglish: "We accept:\n💳 Credit/Debit Cards\n💵 Cash on completion\n📱 Mobile wallets\n🏦 Bank transfer\n\nPayment is due after service completion.",
			domain.LangSinhala: "අපි පිළිගන්නවා:\n💳 ක්‍රෙඩිට්/ඩෙබිට් කාඩ්පත්",
			domain.LangTamil:   "நாங்கள் ஏற்றுக்கொள்கிறோம்:\n💳 கிரெடிட்/டெபிட் கார்டுகள்",
		},
	},
	{
		QuestionKey: "service areas",
		Answers: map[domain.Language]string{
			domain.LangEnglish: "We currently serve:\n📍 Colombo and suburbs\n📍 Gampaha\n📍 Kandy\n📍 Galle\n\nExpanding to more areas soon!",
			domain.LangSinhala: "අපි දැනට සේවය කරන්නේ:\n📍 කොළඹ සහ තදාසන්න ප්‍රදේශ",
			domain.LangTamil:   "நாங்கள் தற்போது சேவை செய்கிறோம்:\n📍 கொழும்பு மற்றும் புறநகர்",
		},
	},
	{
		QuestionKey: "working hours",
		Answers: map[domain.Language]string{
			domain.LangEnglish: "🕐 Service Hours:\n• Regular: 8 AM - 8 PM\n• Emergency: 24/7 available\n\nEmergency services may have additional charges.",
			domain.LangSinhala: "🕐 සේවා වේලාවන්:\n• සාමාන්‍ය: පෙ.ව. 8 - ප.ව. 8",
			domain.LangTamil:   "🕐 சேவை நேரம்:\n• வழக்கமான: காலை 8 - மாலை 8",
		},
	},
}
