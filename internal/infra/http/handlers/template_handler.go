package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type TemplateHandler struct {
	TemplateRepo entity.TemplateRepositoryInterface
}

func NewTemplateHandler(templateRepo entity.TemplateRepositoryInterface) *TemplateHandler {
	return &TemplateHandler{TemplateRepo: templateRepo}
}

type upsertTemplateRequest struct {
	NicheTag string `json:"niche_tag"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// HandleUpsert cria ou substitui o template da tag: POST /templates
func (h *TemplateHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	var req upsertTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_JSON", Message: "invalid JSON body"})
		return
	}

	tag := usecase.NormalizeTag(req.NicheTag)
	if tag == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeValidation, Message: "niche_tag is required"})
		return
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeValidation, Message: "subject and body are required"})
		return
	}

	tmpl := &entity.Template{
		NicheTag: tag,
		Subject:  req.Subject,
		Body:     req.Body,
	}
	if err := h.TemplateRepo.Upsert(r.Context(), tmpl); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"niche_tag": tag, "status": "saved"})
}

// HandleRemove apaga o template: DELETE /templates/{tag}
func (h *TemplateHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	tag := usecase.NormalizeTag(chi.URLParam(r, "tag"))

	removed, err := h.TemplateRepo.Remove(r.Context(), tag)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeNotFound, Message: "no template for niche tag " + tag})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"niche_tag": tag, "status": "removed"})
}

// HandleList lista tag + assunto de cada template: GET /templates
func (h *TemplateHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	templates, err := h.TemplateRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if templates == nil {
		templates = []entity.TemplateSummary{}
	}
	writeJSON(w, http.StatusOK, templates)
}
