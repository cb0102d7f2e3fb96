package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/prelimpro/go-api/internal/application/deadline"
	"github.com/prelimpro/go-api/internal/domain"
	"github.com/prelimpro/go-api/internal/statute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatuteHandler() *StatuteHandler {
	table := statute.Builtin()
	return NewStatuteHandler(table, deadline.NewService(table))
}

func withChiState(r *http.Request, state string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("state", state)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// --- ListStates tests ---

func TestListStates_ReturnsAllFifty(t *testing.T) {
	h := newStatuteHandler()
	r := httptest.NewRequest(http.MethodGet, "/v1/states", nil)
	rr := httptest.NewRecorder()
	h.ListStates(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var states []string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&states))
	require.Len(t, states, 50)
	assert.Equal(t, "Alabama", states[0])
	assert.Equal(t, "Wyoming", states[49])
}

// --- GetRule tests ---

func TestGetRule_ByName(t *testing.T) {
	h := newStatuteHandler()
	r := withChiState(httptest.NewRequest(http.MethodGet, "/v1/statutes/California", nil), "California")
	rr := httptest.NewRecorder()
	h.GetRule(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var rule statute.Rule
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&rule))
	assert.Equal(t, "California", rule.StateName)
	assert.Equal(t, 20, rule.DeadlineDays)
}

func TestGetRule_BySlug(t *testing.T) {
	h := newStatuteHandler()
	r := withChiState(httptest.NewRequest(http.MethodGet, "/v1/statutes/ohio", nil), "ohio")
	rr := httptest.NewRecorder()
	h.GetRule(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var rule statute.Rule
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&rule))
	assert.Equal(t, "Ohio", rule.StateName)
	assert.True(t, rule.NotaryRequired)
}

func TestGetRule_UnlistedStateIs404(t *testing.T) {
	h := newStatuteHandler()
	r := withChiState(httptest.NewRequest(http.MethodGet, "/v1/statutes/New%20York", nil), "New York")
	rr := httptest.NewRecorder()
	h.GetRule(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// --- ComputeDeadline tests ---

func TestComputeDeadline_ListedState(t *testing.T) {
	h := newStatuteHandler()
	body, _ := json.Marshal(domain.DeadlineRequest{State: "California", JobStartDate: "2025-01-01"})
	r := httptest.NewRequest(http.MethodPost, "/v1/deadlines", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ComputeDeadline(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var res deadline.Result
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.True(t, res.Required)
	assert.Equal(t, 20, res.DeadlineDays)
	require.NotNil(t, res.DueDate)
	assert.Equal(t, "2025-01-21", res.DueDate.Format("2006-01-02"))
}

func TestComputeDeadline_UnlistedStateNotRequired(t *testing.T) {
	h := newStatuteHandler()
	body, _ := json.Marshal(domain.DeadlineRequest{State: "New York", JobStartDate: "2025-01-01"})
	r := httptest.NewRequest(http.MethodPost, "/v1/deadlines", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ComputeDeadline(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var res deadline.Result
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.False(t, res.Required)
	assert.Nil(t, res.DueDate)
	assert.NotEmpty(t, res.Note)
}

func TestComputeDeadline_MissingFields(t *testing.T) {
	h := newStatuteHandler()
	body, _ := json.Marshal(domain.DeadlineRequest{State: "California"})
	r := httptest.NewRequest(http.MethodPost, "/v1/deadlines", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ComputeDeadline(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestComputeDeadline_BadDate(t *testing.T) {
	h := newStatuteHandler()
	body, _ := json.Marshal(domain.DeadlineRequest{State: "California", JobStartDate: "01/01/2025"})
	r := httptest.NewRequest(http.MethodPost, "/v1/deadlines", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ComputeDeadline(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
