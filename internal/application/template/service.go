package templateapp

import (
	"github.com/prelimpro/go-api/internal/statute"
	"github.com/prelimpro/go-api/internal/template"
)

// Resolved is a template resolution result: the matched (or fallback) rule
// plus its derived document sections.
type Resolved struct {
	State    string             `json:"state"`
	Slug     string             `json:"slug"`
	Listed   bool               `json:"listed"`
	Rule     statute.Rule       `json:"rule"`
	Sections []template.Section `json:"sections"`
}

type Service interface {
	Get(stateOrSlug string) Resolved
	Preview(stateOrSlug string, values template.PlaceholderMap) string
}

type service struct {
	table *statute.Table
}

func NewService(table *statute.Table) Service {
	return &service{table: table}
}

// Get resolves a state (canonical name or slug) to its template. Unknown
// states resolve to the generic default rule; Listed reports which case hit.
func (s *service) Get(stateOrSlug string) Resolved {
	_, listed := s.table.Lookup(stateOrSlug)
	rule := template.Resolve(s.table, stateOrSlug)
	return Resolved{
		State:    rule.StateName,
		Slug:     statute.Slug(rule.StateName),
		Listed:   listed,
		Rule:     rule,
		Sections: template.Sections(rule),
	}
}

// Preview merges placeholder values into the resolved template and returns
// the final document body without persisting anything.
func (s *service) Preview(stateOrSlug string, values template.PlaceholderMap) string {
	return template.Merge(s.table, stateOrSlug, values)
}
