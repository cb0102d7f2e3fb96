package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	templateapp "github.com/prelimpro/go-api/internal/application/template"
	"github.com/prelimpro/go-api/internal/statute"
	"github.com/prelimpro/go-api/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateHandler() *TemplateHandler {
	return NewTemplateHandler(templateapp.NewService(statute.Builtin()))
}

// --- Get tests ---

func TestGetTemplate_ListedState(t *testing.T) {
	h := newTemplateHandler()
	r := withChiState(httptest.NewRequest(http.MethodGet, "/v1/templates/utah", nil), "utah")
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp templateapp.Resolved
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Listed)
	assert.Equal(t, "Utah", resp.State)
	assert.Equal(t, "utah", resp.Slug)
	assert.Equal(t, 20, resp.Rule.DeadlineDays)
	assert.False(t, resp.Rule.CertifiedMailRequired)
	assert.NotEmpty(t, resp.Sections)
}

func TestGetTemplate_UnknownStateFallsBack(t *testing.T) {
	h := newTemplateHandler()
	r := withChiState(httptest.NewRequest(http.MethodGet, "/v1/templates/guam", nil), "guam")
	rr := httptest.NewRecorder()
	h.Get(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp templateapp.Resolved
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Listed)
	assert.Equal(t, "Guam", resp.State)
	assert.Equal(t, "PRELIMINARY NOTICE", resp.Rule.Title)
	assert.Equal(t, 30, resp.Rule.DeadlineDays)
}

// --- Preview tests ---

func TestPreviewTemplate_MergesValues(t *testing.T) {
	h := newTemplateHandler()
	body, _ := json.Marshal(map[string]interface{}{
		"placeholders": map[string]string{
			"business_name":   "Acme Plumbing LLC",
			"project_address": "42 Sunset Ridge Rd",
		},
	})
	r := withChiState(httptest.NewRequest(http.MethodPost, "/v1/templates/california/preview", bytes.NewReader(body)), "california")
	rr := httptest.NewRecorder()
	h.Preview(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp ContentEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Contains(t, resp.Content, "Acme Plumbing LLC")
	assert.Contains(t, resp.Content, "42 Sunset Ridge Rd")
	assert.NotContains(t, resp.Content, "{{")
	assert.Contains(t, resp.Content, template.Glyph) // unfilled fields render as blanks
}

func TestPreviewTemplate_InvalidBody(t *testing.T) {
	h := newTemplateHandler()
	r := withChiState(httptest.NewRequest(http.MethodPost, "/v1/templates/california/preview", bytes.NewBufferString("not-json")), "california")
	rr := httptest.NewRecorder()
	h.Preview(rr, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
