package handler

import (
	"net/http"

	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/services/dictionary"
	"github.com/mcoot/wordhunt/internal/services/stats"
)

// StatsHandler serves the score log summary
type StatsHandler struct {
	stats stats.ServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats stats.ServiceInterface) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/v1/stats
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsResponse{Stats: response.StatsFromModel(summary)})
}

// Health returns the health check handler
func Health(dict dictionary.ServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:           "ok",
			DictionaryLoaded: dict.IsLoaded(),
		})
	}
}
