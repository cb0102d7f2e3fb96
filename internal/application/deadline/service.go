package deadline

import (
	"time"

	"github.com/prelimpro/go-api/internal/statute"
)

// unlistedNote makes the fail-open path visible to callers: a state missing
// from the rule table is reported as not-required, but never silently.
const unlistedNote = "state not listed in the rule table; no statutory requirement on file — verify with local counsel"

// Result is the requirement decision for one state and job-start date.
type Result struct {
	State        string     `json:"state"`
	Required     bool       `json:"notice_required"`
	DeadlineDays int        `json:"deadline_days,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Note         string     `json:"note,omitempty"`
}

type Service interface {
	Requirement(state string, jobStart time.Time) Result
}

type service struct {
	table *statute.Table
}

func NewService(table *statute.Table) Service {
	return &service{table: table}
}

// Requirement decides notice necessity and computes the due date. Both are
// pure lookups over the injected table; unlisted states come back
// not-required with an explanatory note.
func (s *service) Requirement(state string, jobStart time.Time) Result {
	days, ok := s.table.DeadlineDays(state)
	if !ok || days <= 0 {
		return Result{State: state, Required: false, Note: unlistedNote}
	}
	due := jobStart.AddDate(0, 0, days)
	return Result{
		State:        state,
		Required:     true,
		DeadlineDays: days,
		DueDate:      &due,
	}
}
