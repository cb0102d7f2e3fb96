// Package template turns a state's notice rule into ready-to-render document
// text. Resolution never fails: unknown states fall back to a generic rule,
// and missing placeholder values render as an underscore run so an incomplete
// merge is visible rather than silently blank.
package template

import (
	"fmt"
	"strings"

	"github.com/prelimpro/go-api/internal/statute"
)

// SectionKind identifies a template section's role in the rendered document.
type SectionKind string

const (
	SectionHeader    SectionKind = "header"
	SectionTitle     SectionKind = "title"
	SectionWarning   SectionKind = "warning"
	SectionBody      SectionKind = "body"
	SectionBlank     SectionKind = "blank"
	SectionSignature SectionKind = "signature"
)

// Section is one ordered slice of a notice document: literal text, or text
// carrying {{placeholder}} tokens to be filled at merge time.
type Section struct {
	Kind    SectionKind `json:"kind"`
	Content string      `json:"content"`
}

// headerBlock is the sender identity block. Filled from the business family
// of placeholder keys.
const headerBlock = `{{business_name}}
{{company_name}}
{{address}}
Phone: {{phone}} | Email: {{email}}
Tax ID: {{tax_id}} | {{website}}`

// projectFieldsBlock is the per-notice fields block. Filled from the notice
// family of placeholder keys.
const projectFieldsBlock = `Project Address: {{project_address}}
Property Owner: {{owner_name}}
Amount Owed: {{amount_owed}}
Dates of Service: {{service_dates}}
Notice Deadline: {{deadline_date}}
Description of Work: {{project_description}}`

// DefaultRule is the conservative generic fallback used when a state has no
// table entry: 30-day deadline, certified mail, no notary.
func DefaultRule() statute.Rule {
	return statute.Rule{
		StateName:             "Generic",
		DeadlineDays:          30,
		CertifiedMailRequired: true,
		NotaryRequired:        false,
		Title:                 "PRELIMINARY NOTICE",
		Subtitle:              "Notice of Right to Claim a Lien",
		WarningText:           "This notice is provided to preserve the right to claim a lien for labor, services, equipment, or materials furnished for the improvement of the property described below. It is not a lien and is not a reflection on the integrity of any contractor.",
		LegalNotice:           "You are hereby notified that the undersigned has furnished or will furnish labor, services, equipment, or materials for the improvement of the property described below. If the undersigned is not paid in full, a lien may be claimed against the property as provided by applicable state law. Consult the lien statute of the project's state for the exact deadline and service requirements; the thirty-day figure used here is a conservative general reference.",
		AdditionalClauses: []string{
			"Serving this notice by certified mail with return receipt provides proof of service accepted in most states.",
			"Retain a copy of this notice and the proof of service with your project records.",
		},
		SignatureRequirements: "Signature of claimant or authorized agent",
	}
}

// Resolve returns the rule for a canonical state name or slug, falling back
// to the generic default with a human-readable state name reconstructed from
// the slug. This fallback is deliberate and distinct from the deadline side's
// not-required treatment of unlisted states.
func Resolve(table *statute.Table, stateOrSlug string) statute.Rule {
	if r, ok := table.Lookup(stateOrSlug); ok {
		return r
	}
	r := DefaultRule()
	if stateOrSlug != "" {
		r.StateName = statute.NameFromSlug(stateOrSlug)
	}
	return r
}

// Sections projects a rule into the fixed document section ordering: header,
// title, warning, legal body, delivery summary, one body per additional
// clause, project-fields block, signature.
func Sections(rule statute.Rule) []Section {
	title := rule.Title
	if rule.Subtitle != "" {
		title += "\n" + rule.Subtitle
	}

	sections := []Section{
		{Kind: SectionHeader, Content: headerBlock},
		{Kind: SectionTitle, Content: title},
	}
	if rule.WarningText != "" {
		sections = append(sections, Section{Kind: SectionWarning, Content: rule.WarningText})
	}
	sections = append(sections,
		Section{Kind: SectionBody, Content: rule.LegalNotice},
		Section{Kind: SectionBody, Content: deliverySummary(rule)},
	)
	for i, clause := range rule.AdditionalClauses {
		sections = append(sections, Section{
			Kind:    SectionBody,
			Content: fmt.Sprintf("%d. %s", i+1, clause),
		})
	}
	sections = append(sections,
		Section{Kind: SectionBlank, Content: projectFieldsBlock},
		Section{Kind: SectionSignature, Content: signatureBlock(rule)},
	)
	return sections
}

// deliverySummary synthesizes the one-line delivery requirements from the
// rule's deadline and delivery flags.
func deliverySummary(rule statute.Rule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deadline: %d days", rule.DeadlineDays)
	if rule.CertifiedMailRequired {
		b.WriteString(" | Certified mail recommended")
	} else {
		b.WriteString(" | Mail or personal delivery allowed")
	}
	if rule.NotaryRequired {
		b.WriteString(" | Notary required")
	}
	return b.String()
}

func signatureBlock(rule statute.Rule) string {
	return fmt.Sprintf("Signature: %s  Date: %s\n%s", Glyph, Glyph, rule.SignatureRequirements)
}

// Merge resolves a template, derives its sections, fills every placeholder,
// and joins the sections with a blank-line separator into the final document
// body. The result is a frozen literal string with no remaining tokens.
func Merge(table *statute.Table, stateOrSlug string, values PlaceholderMap) string {
	rule := Resolve(table, stateOrSlug)
	sections := Sections(rule)
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, Fill(s.Content, values))
	}
	return strings.Join(parts, "\n\n")
}
