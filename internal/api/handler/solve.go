package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/hints"
	"github.com/mcoot/wordhunt/internal/services/scoring"
)

// SolveHandler lists the words hidden in a board
type SolveHandler struct {
	hints hints.ServiceInterface
}

// NewSolveHandler creates a new solve handler
func NewSolveHandler(hints hints.ServiceInterface) *SolveHandler {
	return &SolveHandler{hints: hints}
}

// Solve handles POST /api/v1/solve
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req request.SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	b, err := model.ParseBoard(req.Rows...)
	if err != nil {
		WriteError(w, err)
		return
	}

	words, err := h.hints.Find(r.Context(), b)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Solve{
		Board: b.Rows(),
		Words: response.HintsFromModel(scoring.RankHints(words, nil, 0)),
	})
}
