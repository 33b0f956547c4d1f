package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type BlacklistHandler struct {
	BlacklistRepo entity.BlacklistRepositoryInterface
}

func NewBlacklistHandler(blacklistRepo entity.BlacklistRepositoryInterface) *BlacklistHandler {
	return &BlacklistHandler{BlacklistRepo: blacklistRepo}
}

type addBlacklistRequest struct {
	Emails []string `json:"emails"`
	Reason string   `json:"reason,omitempty"`
}

type addBlacklistResponse struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Invalid []string `json:"invalid,omitempty"`
}

// HandleAdd blacklista endereços em lote: POST /blacklist
// Cada entrada é independente; inválidas são só reportadas.
func (h *BlacklistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addBlacklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_JSON", Message: "invalid JSON body"})
		return
	}
	if len(req.Emails) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: usecase.CodeValidation, Message: "emails is required"})
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "manual"
	}

	out := addBlacklistResponse{}
	for _, raw := range req.Emails {
		email, err := usecase.NormalizeEmail(raw)
		if err != nil {
			out.Invalid = append(out.Invalid, raw)
			continue
		}
		added, err := h.BlacklistRepo.Add(r.Context(), email, reason)
		if err != nil {
			writeError(w, err)
			return
		}
		if added {
			out.Added++
		} else {
			out.Skipped++
		}
	}

	writeJSON(w, http.StatusOK, out)
}

// HandleRemove tira o endereço da blacklist: DELETE /blacklist/{email}
func (h *BlacklistHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	email, err := usecase.NormalizeEmail(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, err)
		return
	}

	removed, err := h.BlacklistRepo.Remove(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		writeJSON(w, http.StatusNotFound, errorResponse{Code: usecase.CodeNotFound, Message: "not blacklisted: " + email})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"email": email, "status": "removed"})
}

// HandleList: GET /blacklist
func (h *BlacklistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.BlacklistRepo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []entity.BlacklistEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
