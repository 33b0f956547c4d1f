package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError mapeia o erro tipado do usecase para o status HTTP.
func writeError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		writeJSON(w, statusForCode(de.Code), errorResponse{Code: de.Code, Message: de.Message})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Code:    "INTERNAL_ERROR",
		Message: err.Error(),
	})
}

func statusForCode(code string) int {
	switch code {
	case usecase.CodeInvalidAddress, usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeBlacklisted:
		return http.StatusUnprocessableEntity
	case usecase.CodeQuotaExceeded:
		return http.StatusTooManyRequests
	case usecase.CodeNoTemplate, usecase.CodeNoLeads, usecase.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
