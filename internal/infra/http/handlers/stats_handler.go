package handlers

import (
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type StatsHandler struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewStatsHandler(leadRepo entity.LeadRepositoryInterface) *StatsHandler {
	return &StatsHandler{LeadRepo: leadRepo}
}

// HandleGetStats: GET /stats
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.LeadRepo.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
