package statute

import "strings"

// stateNames is the fixed, ordered list of canonical US state names. It is
// the single source of truth for "valid state" checks: form validation, the
// rule table, and template slug derivation all key off these names.
var stateNames = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "Florida", "Georgia",
	"Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
	"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
}

// StateNames returns the canonical ordered state list. The returned slice is
// a copy; callers may not mutate the enumeration.
func StateNames() []string {
	out := make([]string, len(stateNames))
	copy(out, stateNames)
	return out
}

// IsValidState reports whether name is a canonical US state name
// (case-sensitive exact match).
func IsValidState(name string) bool {
	for _, s := range stateNames {
		if s == name {
			return true
		}
	}
	return false
}

// Slug derives the lowercase hyphenated lookup key for a state display name,
// e.g. "New Mexico" -> "new-mexico".
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// NameFromSlug reconstructs a human-readable display name from a slug,
// e.g. "new-mexico" -> "New Mexico". The result is not guaranteed to be a
// canonical state name; it is used to label fallback templates for slugs
// that match nothing.
func NameFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
