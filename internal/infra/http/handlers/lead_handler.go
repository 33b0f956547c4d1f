package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type LeadHandler struct {
	AddLeadsUC  *usecase.AddLeadsUseCase
	ReconcileUC *usecase.ReconcileReplyUseCase
	LeadRepo    entity.LeadRepositoryInterface
}

func NewLeadHandler(
	addLeadsUC *usecase.AddLeadsUseCase,
	reconcileUC *usecase.ReconcileReplyUseCase,
	leadRepo entity.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		AddLeadsUC:  addLeadsUC,
		ReconcileUC: reconcileUC,
		LeadRepo:    leadRepo,
	}
}

// HandleAdd insere leads em lote: POST /leads
func (h *LeadHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var input usecase.AddLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_JSON", Message: "invalid JSON body"})
		return
	}

	out, err := h.AddLeadsUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type removeLeadsRequest struct {
	Emails []string `json:"emails"`
}

type removeLeadsResponse struct {
	Removed int64    `json:"removed"`
	Invalid []string `json:"invalid,omitempty"`
}

// HandleRemove apaga leads pelo email: DELETE /leads
func (h *LeadHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req removeLeadsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_JSON", Message: "invalid JSON body"})
		return
	}
	if len(req.Emails) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeValidation, Message: "emails is required"})
		return
	}

	var emails []string
	var invalid []string
	for _, raw := range req.Emails {
		email, err := usecase.NormalizeEmail(raw)
		if err != nil {
			invalid = append(invalid, raw)
			continue
		}
		emails = append(emails, email)
	}

	var removed int64
	if len(emails) > 0 {
		var err error
		removed, err = h.LeadRepo.Remove(r.Context(), emails)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, removeLeadsResponse{Removed: removed, Invalid: invalid})
}

// HandleExport devolve os leads como CSV: GET /leads/export?tag=
func (h *LeadHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	tag := usecase.NormalizeTag(r.URL.Query().Get("tag"))

	leads, err := h.LeadRepo.ListForExport(r.Context(), tag)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := "leads.csv"
	if tag != "" {
		filename = "leads_" + tag + ".csv"
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := WriteLeadsCSV(w, leads); err != nil {
		// Headers já foram; só loga via erro de escrita silencioso
		return
	}
}

// HandleMarkReplied marca manualmente: POST /leads/{email}/replied
func (h *LeadHandler) HandleMarkReplied(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.ReconcileUC.MarkManually(r.Context(), email); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "replied"})
}

// WriteLeadsCSV serializa os leads no formato de exportação do operador.
func WriteLeadsCSV(w interface{ Write([]byte) (int, error) }, leads []entity.Lead) error {
	cw := csv.NewWriter(w)

	header := []string{
		"name", "email", "niche_tag", "used", "replied",
		"template_used", "sent_at", "failed", "fail_count", "created_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, lead := range leads {
		sentAt := ""
		if lead.SentAt != nil {
			sentAt = lead.SentAt.Format(time.RFC3339)
		}
		record := []string{
			lead.Name,
			lead.Email,
			lead.NicheTag,
			strconv.FormatBool(lead.Used),
			strconv.FormatBool(lead.Replied),
			lead.TemplateUsed,
			sentAt,
			strconv.FormatBool(lead.Failed),
			strconv.Itoa(lead.FailCount),
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
