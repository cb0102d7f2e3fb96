package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	templateapp "github.com/prelimpro/go-api/internal/application/template"
	"github.com/prelimpro/go-api/internal/template"
)

// TemplateHandler serves notice templates and placeholder-merge previews.
type TemplateHandler struct {
	svc templateapp.Service
}

func NewTemplateHandler(svc templateapp.Service) *TemplateHandler {
	return &TemplateHandler{svc: svc}
}

// Get resolves a template by canonical state name or slug. Unknown states
// resolve to the generic default template rather than failing.
func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Get(chi.URLParam(r, "state")))
}

type previewRequest struct {
	Placeholders map[string]string `json:"placeholders"`
}

// Preview merges placeholder values into the state's template and returns
// the document body without persisting anything.
func (h *TemplateHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	content := h.svc.Preview(chi.URLParam(r, "state"), template.PlaceholderMap(req.Placeholders))
	writeJSON(w, http.StatusOK, ContentEnvelope{Content: content})
}
