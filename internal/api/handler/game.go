package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fairhand/fairhand/internal/api/middleware"
	"github.com/fairhand/fairhand/internal/api/request"
	"github.com/fairhand/fairhand/internal/api/response"
	"github.com/fairhand/fairhand/internal/model"
	"github.com/fairhand/fairhand/internal/services/match"
)

// GameHandler handles the commit-reveal game endpoints
type GameHandler struct {
	matchController *match.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(matchController *match.Controller) *GameHandler {
	return &GameHandler{
		matchController: matchController,
	}
}

// GetState handles GET /api/v1/game
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	m, err := h.matchController.GetMatch(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MatchStateFromModel(m))
}

// Challenge handles POST /api/v1/game/challenge. Requesting a challenge while
// one is already pending replaces it.
func (h *GameHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	commitment, err := h.matchController.IssueChallenge(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ChallengeResponse{Commitment: commitment})
}

// Answer handles POST /api/v1/game/answer
func (h *GameHandler) Answer(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	hand, err := model.ParseHand(req.Hand)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.matchController.SubmitAnswer(r.Context(), player.ID, hand)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AnswerResponseFromResult(player.DisplayName, result))
}
