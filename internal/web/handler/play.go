package handler

import (
	"errors"
	"net/http"

	"github.com/fairhand/fairhand/internal/model"
	"github.com/fairhand/fairhand/internal/services/match"
	"github.com/fairhand/fairhand/internal/web/layout"
	"github.com/fairhand/fairhand/internal/web/middleware"
	"github.com/fairhand/fairhand/internal/web/pages"
)

// PlayHandler handles the game page and hand submissions
type PlayHandler struct {
	matchController *match.Controller
}

// NewPlayHandler creates a new PlayHandler
func NewPlayHandler(matchController *match.Controller) *PlayHandler {
	return &PlayHandler{
		matchController: matchController,
	}
}

// Play renders the game page, committing to a new round if none is pending
func (h *PlayHandler) Play(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	m, err := h.matchController.GetMatch(r.Context(), player.ID)
	if errors.Is(err, model.ErrMatchNotFound) {
		// Session outlived the match, start over
		m, err = h.matchController.StartMatch(r.Context(), player.ID, player.DisplayName)
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	commitment := ""
	if m.Pending != nil {
		commitment = m.Pending.Commitment
	} else {
		commitment, err = h.matchController.IssueChallenge(r.Context(), player.ID)
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	h.renderPlay(w, r, pages.PlayData{
		PageData: layout.PageData{
			Title:  "Play",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		Match:      m,
		Commitment: commitment,
	})
}

// Submit handles a hand submission and shows the revealed round
func (h *PlayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	hand, err := model.ParseHand(r.FormValue("hand"))
	if err != nil {
		middleware.SetFlash(w, "error", "Pick rock, paper, or scissors")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	result, err := h.matchController.SubmitAnswer(r.Context(), player.ID, hand)
	if errors.Is(err, model.ErrNoPendingRound) {
		middleware.SetFlash(w, "error", "That round is no longer open")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if errors.Is(err, model.ErrMatchNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	m, err := h.matchController.GetMatch(r.Context(), player.ID)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderPlay(w, r, pages.PlayData{
		PageData: layout.PageData{
			Title:  "Play",
			Player: player,
		},
		Match:      m,
		Commitment: result.NextCommitment,
		Result:     result,
	})
}

func (h *PlayHandler) renderPlay(w http.ResponseWriter, r *http.Request, data pages.PlayData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Play(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
