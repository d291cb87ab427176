package domain

// KnowledgeRecord is the static descriptive data about a service category.
// Records are language-agnostic; templated intent replies carry the
// localized text.
type KnowledgeRecord struct {
	Service           ServiceType       `json:"service"`
	Description       string            `json:"description"`
	CommonIssues      []string          `json:"commonIssues"`
	Tips              []string          `json:"tips"`
	EmergencySigns    []string          `json:"emergencySigns"`
	TechnicianProfile TechnicianProfile `json:"technicianProfile"`
	AvgDuration       string            `json:"avgDuration"`
	AvgCostRange      string            `json:"avgCostRange"`
}

// TechnicianProfile describes the kind of professional dispatched for
// a service category.
type TechnicianProfile struct {
	Qualifications        []string `json:"qualifications"`
	Skills                []string `json:"skills"`
	Tools                 []string `json:"tools"`
	VerificationStatement string   `json:"verificationStatement"`
}

// FAQEntry is one row of the static FAQ table. QuestionKey is a
// space-delimited keyword set; an entry matches when any single keyword
// appears in the query.
type FAQEntry struct {
	QuestionKey string              `json:"questionKey"`
	Answers     map[Language]string `json:"answers"`
}
