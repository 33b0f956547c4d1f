package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type DispatchHandler struct {
	DispatchUC *usecase.DispatchUseCase
}

func NewDispatchHandler(dispatchUC *usecase.DispatchUseCase) *DispatchHandler {
	return &DispatchHandler{DispatchUC: dispatchUC}
}

// HandleDispatch dispara o lote de envio da tag: POST /dispatch/{tag}
// A request fica aberta até o lote terminar; é o comando do operador,
// um por vez, igual ao contrato do motor.
func (h *DispatchHandler) HandleDispatch(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	out, err := h.DispatchUC.Execute(r.Context(), tag)
	if err != nil {
		middleware.RecordDispatchBatch("dispatch", "refused")
		writeError(w, err)
		return
	}

	middleware.RecordDispatchBatch("dispatch", "completed")
	middleware.RecordEmailsSent(out.NicheTag, out.Sent)
	middleware.RecordEmailsFailed(out.NicheTag, out.Failed)

	writeJSON(w, http.StatusOK, out)
}

// HandleRetry reprocessa os leads falhos da tag: POST /retry/{tag}
func (h *DispatchHandler) HandleRetry(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	out, err := h.DispatchUC.Retry(r.Context(), tag)
	if err != nil {
		middleware.RecordDispatchBatch("retry", "refused")
		writeError(w, err)
		return
	}

	middleware.RecordDispatchBatch("retry", "completed")
	middleware.RecordEmailsSent(out.NicheTag, out.Sent)
	middleware.RecordEmailsFailed(out.NicheTag, out.Failed)

	writeJSON(w, http.StatusOK, out)
}
