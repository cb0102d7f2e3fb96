package statute

import "fmt"

// Rule holds the statutory preliminary-notice configuration for one US state:
// the serving deadline in calendar days from first furnishing of labor or
// materials, delivery-method flags, and the literal document text placed
// verbatim into rendered notices.
type Rule struct {
	StateName             string   `json:"state_name"`
	DeadlineDays          int      `json:"deadline_days"`
	CertifiedMailRequired bool     `json:"certified_mail_required"`
	NotaryRequired        bool     `json:"notary_required"`
	Title                 string   `json:"title"`
	Subtitle              string   `json:"subtitle"`
	WarningText           string   `json:"warning_text"`
	LegalNotice           string   `json:"legal_notice"`
	AdditionalClauses     []string `json:"additional_clauses"`
	SignatureRequirements string   `json:"signature_requirements"`
}

// validate checks the static-data invariants. A failure here is a bug in the
// rule table, not a runtime condition.
func (r Rule) validate() error {
	if r.StateName == "" {
		return fmt.Errorf("rule with empty state name")
	}
	if r.DeadlineDays < 1 || r.DeadlineDays > 365 {
		return fmt.Errorf("rule %q: deadline days %d out of range [1,365]", r.StateName, r.DeadlineDays)
	}
	if r.Title == "" {
		return fmt.Errorf("rule %q: empty title", r.StateName)
	}
	if r.LegalNotice == "" {
		return fmt.Errorf("rule %q: empty legal notice", r.StateName)
	}
	return nil
}
