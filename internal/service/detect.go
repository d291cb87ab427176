package service

import "github.com/quickfix/assistant-go/internal/domain"

// Unicode block bounds used for script detection.
const (
	sinhalaBlockLo = 0x0D80
	sinhalaBlockHi = 0x0DFF
	tamilBlockLo   = 0x0B80
	tamilBlockHi   = 0x0BFF
)

// DetectLanguage classifies raw text into one of the three supported
// language codes by Unicode block. The Sinhala check runs before the
// Tamil check, so mixed-script text resolves to Sinhala. Everything
// else, including empty input, is English.
func DetectLanguage(text string) domain.Language {
	for _, r := range text {
		if r >= sinhalaBlockLo && r <= sinhalaBlockHi {
			return domain.LangSinhala
		}
	}
	for _, r := range text {
		if r >= tamilBlockLo && r <= tamilBlockHi {
			return domain.LangTamil
		}
	}
	return domain.LangEnglish
}
