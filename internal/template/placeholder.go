package template

import (
	"regexp"
	"strings"
)

// PlaceholderMap maps placeholder keys to their replacement values. Two key
// families are used by the builtin templates: sender identity
// (business_name, company_name, address, phone, email, tax_id, website) and
// per-notice project fields (project_address, owner_name, amount_owed,
// service_dates, deadline_date, project_description). Keys outside these
// families are accepted; tokens with no usable value render as the glyph.
type PlaceholderMap map[string]string

// Glyph is the fixed underscore run substituted for missing or empty
// placeholder values, so an incomplete merge reads as a fill-in line rather
// than disappearing.
const Glyph = "____________________"

var tokenRe = regexp.MustCompile(`\{\{([a-zA-Z][a-zA-Z0-9_]*)\}\}`)

// Fill substitutes every {{identifier}} token in text. A non-empty
// (post-trim) value is substituted verbatim; a missing, empty, or
// whitespace-only value becomes the glyph. Substitution is a single pass:
// replacement values containing {{...}} are not re-scanned, and no token is
// ever left as literal {{identifier}} text. Text without tokens is returned
// unchanged.
func Fill(text string, values PlaceholderMap) string {
	return tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		key := tok[2 : len(tok)-2]
		if v, ok := values[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		return Glyph
	})
}
