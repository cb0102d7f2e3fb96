package template

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prelimpro/go-api/internal/statute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFill_PresentValue(t *testing.T) {
	out := Fill("Owner: {{owner_name}}", PlaceholderMap{"owner_name": "Jane Doe"})
	assert.Equal(t, "Owner: Jane Doe", out)
}

func TestFill_EmptyValueBecomesGlyph(t *testing.T) {
	out := Fill("Owner: {{owner_name}}", PlaceholderMap{"owner_name": ""})
	assert.Equal(t, "Owner: ____________________", out)
}

func TestFill_WhitespaceOnlyValueBecomesGlyph(t *testing.T) {
	out := Fill("Owner: {{owner_name}}", PlaceholderMap{"owner_name": "   "})
	assert.Equal(t, "Owner: "+Glyph, out)
}

func TestFill_UnknownTokenBecomesGlyph(t *testing.T) {
	out := Fill("X: {{no_such_key}}", PlaceholderMap{"owner_name": "Jane"})
	assert.Equal(t, "X: "+Glyph, out)
	assert.NotContains(t, out, "{{")
}

func TestFill_NoTokensUnchanged(t *testing.T) {
	text := "Plain text with no tokens, even braces like { } survive."
	assert.Equal(t, text, Fill(text, PlaceholderMap{"owner_name": "Jane"}))
}

func TestFill_Deterministic(t *testing.T) {
	text := "A: {{a}}, B: {{b}}, C: {{c}}"
	values := PlaceholderMap{"a": "1", "b": "2"}
	assert.Equal(t, Fill(text, values), Fill(text, values))
}

func TestFill_SinglePassNoRecursiveExpansion(t *testing.T) {
	out := Fill("V: {{a}}", PlaceholderMap{"a": "{{b}}", "b": "nested"})
	assert.Equal(t, "V: {{b}}", out)
}

func TestResolve_ListedStateAndSlug(t *testing.T) {
	tbl := statute.Builtin()

	byName := Resolve(tbl, "Ohio")
	assert.True(t, byName.NotaryRequired)

	bySlug := Resolve(tbl, "ohio")
	assert.Equal(t, byName, bySlug)
}

func TestResolve_UnknownStateFallsBackToDefault(t *testing.T) {
	tbl := statute.Builtin()

	rule := Resolve(tbl, "not-a-real-state")
	assert.Equal(t, "PRELIMINARY NOTICE", rule.Title)
	assert.Equal(t, 30, rule.DeadlineDays)
	assert.True(t, rule.CertifiedMailRequired)
	assert.False(t, rule.NotaryRequired)
	assert.Equal(t, "Not A Real State", rule.StateName)
}

func TestSections_FixedOrdering(t *testing.T) {
	tbl := statute.Builtin()
	rule := Resolve(tbl, "California")
	sections := Sections(rule)
	require.GreaterOrEqual(t, len(sections), 6)

	assert.Equal(t, SectionHeader, sections[0].Kind)
	assert.Equal(t, SectionTitle, sections[1].Kind)
	assert.Equal(t, SectionWarning, sections[2].Kind)
	assert.Equal(t, SectionBody, sections[3].Kind)
	assert.Equal(t, SectionBlank, sections[len(sections)-2].Kind)
	assert.Equal(t, SectionSignature, sections[len(sections)-1].Kind)

	// One numbered body section per additional clause.
	var clauses int
	for i := range rule.AdditionalClauses {
		for _, s := range sections {
			if s.Kind == SectionBody && strings.HasPrefix(s.Content, fmt.Sprintf("%d. ", i+1)) {
				clauses++
			}
		}
	}
	assert.Equal(t, len(rule.AdditionalClauses), clauses)
}

func TestSections_DeliverySummary(t *testing.T) {
	tbl := statute.Builtin()

	ca := deliverySummary(Resolve(tbl, "California"))
	assert.Equal(t, "Deadline: 20 days | Certified mail recommended", ca)

	ut := deliverySummary(Resolve(tbl, "Utah"))
	assert.Equal(t, "Deadline: 20 days | Mail or personal delivery allowed", ut)

	oh := deliverySummary(Resolve(tbl, "Ohio"))
	assert.Equal(t, "Deadline: 21 days | Certified mail recommended | Notary required", oh)
}

func TestMerge_ProducesFrozenText(t *testing.T) {
	tbl := statute.Builtin()
	values := PlaceholderMap{
		"business_name":   "Acme Concrete LLC",
		"address":         "1 Main St, Sacramento, CA",
		"project_address": "42 Jobsite Rd",
		"owner_name":      "Jane Doe",
	}

	doc := Merge(tbl, "California", values)
	assert.Contains(t, doc, "CALIFORNIA PRELIMINARY NOTICE")
	assert.Contains(t, doc, "Acme Concrete LLC")
	assert.Contains(t, doc, "Property Owner: Jane Doe")
	// Unset keys render as the glyph, never as literal tokens.
	assert.Contains(t, doc, "Amount Owed: "+Glyph)
	assert.NotContains(t, doc, "{{")
	assert.NotContains(t, doc, "}}")

	// Sections are joined with a blank-line separator.
	assert.Contains(t, doc, "\n\n")
}

func TestMerge_UnknownStateUsesDefaultTemplate(t *testing.T) {
	tbl := statute.Builtin()

	doc := Merge(tbl, "guam", PlaceholderMap{})
	assert.Contains(t, doc, "PRELIMINARY NOTICE")
	assert.Contains(t, doc, "Deadline: 30 days | Certified mail recommended")
	assert.NotContains(t, doc, "{{")
}
