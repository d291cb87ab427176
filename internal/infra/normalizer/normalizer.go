// Package normalizer provides the optional best-effort linguistic
// preprocessor. It is a capability, not a requirement: the pipeline
// classifies identically when no normalizer is configured.
package normalizer

import "strings"

// Basic folds case and collapses whitespace. It deliberately keeps
// every word; stripping stopwords would break multi-word patterns such
// as "how much".
type Basic struct{}

// NewBasic creates the basic normalizer.
func NewBasic() *Basic {
	return &Basic{}
}

// Normalize returns the cleaned form of text.
func (b *Basic) Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
