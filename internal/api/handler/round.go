package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordhunt/internal/api/request"
	"github.com/mcoot/wordhunt/internal/api/response"
	"github.com/mcoot/wordhunt/internal/model"
	"github.com/mcoot/wordhunt/internal/services/game"
)

// RoundHandler handles round endpoints
type RoundHandler struct {
	controller game.ControllerInterface
}

// NewRoundHandler creates a new round handler
func NewRoundHandler(controller game.ControllerInterface) *RoundHandler {
	return &RoundHandler{controller: controller}
}

// Start handles POST /api/v1/rounds
func (h *RoundHandler) Start(w http.ResponseWriter, r *http.Request) {
	round, err := h.controller.StartRound(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, h.toResponse(round))
}

// Get handles GET /api/v1/rounds/{id}
func (h *RoundHandler) Get(w http.ResponseWriter, r *http.Request) {
	round, err := h.controller.GetRound(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(round))
}

// NewBoard handles POST /api/v1/rounds/{id}/board
func (h *RoundHandler) NewBoard(w http.ResponseWriter, r *http.Request) {
	round, err := h.controller.NewBoard(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.toResponse(round))
}

// Guess handles POST /api/v1/rounds/{id}/guesses. Without an interactive
// loop to end the round, the deadline is enforced here.
func (h *RoundHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if strings.TrimSpace(req.Word) == "" {
		WriteError(w, NewInvalidRequestError("word is required"))
		return
	}

	id := roundID(r)
	round, err := h.controller.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}
	if round.IsEnded() {
		WriteError(w, model.ErrRoundEnded)
		return
	}
	if h.controller.IsExpired(round) {
		WriteError(w, model.ErrRoundExpired)
		return
	}

	result, err := h.controller.SubmitGuess(r.Context(), id, req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	round, err = h.controller.GetRound(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResultFromModel(result, round, h.controller.TimeLeft(round)))
}

// End handles POST /api/v1/rounds/{id}/end
func (h *RoundHandler) End(w http.ResponseWriter, r *http.Request) {
	summary, err := h.controller.EndRound(r.Context(), roundID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SummaryFromModel(summary))
}

func (h *RoundHandler) toResponse(round *model.Round) response.Round {
	timeLeft := 0
	if !round.IsEnded() {
		timeLeft = h.controller.TimeLeft(round)
	}
	return response.RoundFromModel(round, timeLeft)
}

func roundID(r *http.Request) model.RoundID {
	return model.RoundID(mux.Vars(r)["id"])
}
