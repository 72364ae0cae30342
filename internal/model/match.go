package model

import "time"

// Match is a player's running game against the computer: the score so far and
// the round currently awaiting an answer, if any. One Match exists per
// logged-in player and lives exactly as long as their login.
type Match struct {
	PlayerID    PlayerID
	DisplayName string

	// Counters only ever grow, by exactly one per resolved round
	Wins   int
	Ties   int
	Losses int

	// Pending is the issued-but-unanswered round. Nil before the first
	// challenge and after the match ends.
	Pending *Round

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoundsPlayed returns the total number of resolved rounds
func (m *Match) RoundsPlayed() int {
	return m.Wins + m.Ties + m.Losses
}

// RoundResult is everything produced by resolving one round: the outcome from
// the player's perspective, the revealed secrets of the answered round so the
// player can check the commitment, the updated score, and the commitment of
// the next round, which is issued immediately.
type RoundResult struct {
	Outcome    Outcome
	PlayerHand Hand

	// Revealed values of the round just answered
	ComputerHand Hand
	Nonce        string
	Commitment   string

	Wins   int
	Ties   int
	Losses int

	// NextCommitment belongs to the freshly issued round
	NextCommitment string
}
