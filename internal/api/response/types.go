package response

import (
	"github.com/fairhand/fairhand/internal/model"
	"github.com/fairhand/fairhand/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// MatchState is the player's running score and the commitment of the round
// awaiting an answer, if any. The committed hand and nonce are never part of
// any response until the round is resolved.
type MatchState struct {
	UserName   string `json:"user_name"`
	WinCount   int    `json:"win_count"`
	TieCount   int    `json:"tie_count"`
	LossCount  int    `json:"loss_count"`
	Commitment string `json:"commitment,omitempty"`
}

// MatchStateFromModel converts a model.Match to a MatchState
func MatchStateFromModel(m *model.Match) MatchState {
	state := MatchState{
		UserName:  m.DisplayName,
		WinCount:  m.Wins,
		TieCount:  m.Ties,
		LossCount: m.Losses,
	}
	if m.Pending != nil {
		state.Commitment = m.Pending.Commitment
	}
	return state
}

// ChallengeResponse is the response after issuing a challenge
type ChallengeResponse struct {
	Commitment string `json:"commitment"`
}

// AnswerResponse is the response after answering a round: the revealed
// secrets of the answered round, the updated score, and the commitment of the
// next round
type AnswerResponse struct {
	UserName  string `json:"user_name"`
	WinCount  int    `json:"win_count"`
	TieCount  int    `json:"tie_count"`
	LossCount int    `json:"loss_count"`

	LastHumanHand    string `json:"last_human_hand"`
	LastComputerHand string `json:"last_computer_hand"`
	LastResult       string `json:"last_result"`
	LastNonce        string `json:"last_nonce"`
	LastCommitment   string `json:"last_commitment"`

	Commitment string `json:"commitment"`
}

// AnswerResponseFromResult converts a round result into an AnswerResponse
func AnswerResponseFromResult(userName string, r *model.RoundResult) AnswerResponse {
	return AnswerResponse{
		UserName:         userName,
		WinCount:         r.Wins,
		TieCount:         r.Ties,
		LossCount:        r.Losses,
		LastHumanHand:    r.PlayerHand.Token(),
		LastComputerHand: r.ComputerHand.Token(),
		LastResult:       r.Outcome.Token(),
		LastNonce:        r.Nonce,
		LastCommitment:   r.Commitment,
		Commitment:       r.NextCommitment,
	}
}
