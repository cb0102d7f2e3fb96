package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prelimpro/go-api/internal/application/deadline"
	"github.com/prelimpro/go-api/internal/domain"
	"github.com/prelimpro/go-api/internal/pkg/validate"
	"github.com/prelimpro/go-api/internal/statute"
)

// StatuteHandler serves the state enumeration, the per-state rule table and
// deadline computation.
type StatuteHandler struct {
	table *statute.Table
	svc   deadline.Service
}

func NewStatuteHandler(table *statute.Table, svc deadline.Service) *StatuteHandler {
	return &StatuteHandler{table: table, svc: svc}
}

// ListStates returns the canonical ordered US state names. This is the
// picker data source; not every enumerated state has a notice rule.
func (h *StatuteHandler) ListStates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statute.StateNames())
}

func (h *StatuteHandler) ListRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.table.Rules())
}

// GetRule resolves a rule by canonical name or slug. Unlisted states are a
// 404 here; the deadline endpoint reports them as not-required instead.
func (h *StatuteHandler) GetRule(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	rule, ok := h.table.Lookup(state)
	if !ok {
		writeError(w, http.StatusNotFound, "no notice rule for state")
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

// ComputeDeadline answers whether a notice is required for the given state
// and job-start date, and when it is due.
func (h *StatuteHandler) ComputeDeadline(w http.ResponseWriter, r *http.Request) {
	var req domain.DeadlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	jobStart, err := time.Parse("2006-01-02", req.JobStartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job_start_date (want YYYY-MM-DD)")
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Requirement(req.State, jobStart))
}
