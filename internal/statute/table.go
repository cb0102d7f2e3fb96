package statute

import (
	"fmt"
	"time"

	"github.com/prelimpro/go-api/internal/domain"
)

// Table is the read-only per-state rule lookup. It is constructed once and
// injected wherever deadline or template resolution happens; it is never
// mutated after NewTable returns.
type Table struct {
	rules map[string]Rule // keyed by canonical state name
	slugs map[string]string
	names []string // listed states, enumeration order
}

// NewTable builds a Table from the given rules, validating every rule once.
// Rules must be keyed to canonical state names and unique per state; a
// violation is a static-data bug and returns an error rather than being
// handled defensively downstream.
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{
		rules: make(map[string]Rule, len(rules)),
		slugs: make(map[string]string, len(rules)),
	}
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if !IsValidState(r.StateName) {
			return nil, fmt.Errorf("rule %q: not a canonical state name", r.StateName)
		}
		if _, exists := t.rules[r.StateName]; exists {
			return nil, fmt.Errorf("duplicate rule for %q", r.StateName)
		}
		t.rules[r.StateName] = r
		t.slugs[Slug(r.StateName)] = r.StateName
	}
	for _, name := range stateNames {
		if _, ok := t.rules[name]; ok {
			t.names = append(t.names, name)
		}
	}
	return t, nil
}

// Builtin returns the production rule table. It panics on invalid static
// data; that can only happen from a bad edit to BuiltinRules.
func Builtin() *Table {
	t, err := NewTable(BuiltinRules())
	if err != nil {
		panic("statute: invalid builtin rule table: " + err.Error())
	}
	return t
}

// Lookup resolves a rule by canonical state name or by slug. The boolean
// reports whether the state is listed; each call site chooses its own
// fallback for the not-found case.
func (t *Table) Lookup(stateOrSlug string) (Rule, bool) {
	if r, ok := t.rules[stateOrSlug]; ok {
		return r, true
	}
	if name, ok := t.slugs[stateOrSlug]; ok {
		return t.rules[name], true
	}
	return Rule{}, false
}

// DeadlineDays returns the serving deadline for a listed state.
func (t *Table) DeadlineDays(state string) (int, bool) {
	r, ok := t.Lookup(state)
	if !ok {
		return 0, false
	}
	return r.DeadlineDays, true
}

// IsNoticeRequired reports whether a preliminary notice is statutorily
// required in the given state. Unlisted states report false.
func (t *Table) IsNoticeRequired(state string) bool {
	days, ok := t.DeadlineDays(state)
	return ok && days > 0
}

// CalculateDeadline returns jobStart plus the state's deadline in calendar
// days. Statutory deadlines are calendar days: no business-day or holiday
// adjustment, and month/year overflow follows standard calendar arithmetic.
// Callers must check IsNoticeRequired first; an unlisted state is a
// precondition violation and returns an error.
func (t *Table) CalculateDeadline(state string, jobStart time.Time) (time.Time, error) {
	days, ok := t.DeadlineDays(state)
	if !ok {
		return time.Time{}, fmt.Errorf("no notice rule for state %q: %w", state, domain.ErrBadRequest)
	}
	return jobStart.AddDate(0, 0, days), nil
}

// States returns the listed state names in enumeration order.
func (t *Table) States() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Rules returns every listed rule in enumeration order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, t.rules[name])
	}
	return out
}
