package model

import "strings"

// Hand is one of the three rock-paper-scissors throws.
// The set is closed; code switching on Hand can assume exactly these values.
type Hand int

const (
	Rock Hand = iota
	Paper
	Scissors
)

// Hands lists every hand in canonical order
var Hands = [3]Hand{Rock, Paper, Scissors}

// Outcome is the result of comparing two hands
type Outcome int

const (
	Loss Outcome = iota
	Tie
	Win
)

// beats holds the cyclic beats-relation. Rock blunts scissors, scissors cut
// paper, paper wraps rock. There is deliberately no ordering to derive this
// from; the three pairs are the rule.
var beats = map[Hand]Hand{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Vs compares h against other from h's perspective
func (h Hand) Vs(other Hand) Outcome {
	switch {
	case h == other:
		return Tie
	case beats[h] == other:
		return Win
	default:
		return Loss
	}
}

// Token returns the canonical lowercase ASCII name of the hand. It is both the
// display form and the exact byte sequence fed into the round commitment, so it
// must stay stable.
func (h Hand) Token() string {
	switch h {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return ""
}

// Icon returns the emoji used for the hand in the web UI
func (h Hand) Icon() string {
	switch h {
	case Rock:
		return "✊"
	case Paper:
		return "✋"
	case Scissors:
		return "✌"
	}
	return ""
}

func (h Hand) String() string {
	return h.Token()
}

// ParseHand parses a case-insensitive hand token. Anything outside the three
// canonical tokens fails with ErrUnknownHand; there is no default hand.
func ParseHand(token string) (Hand, error) {
	switch strings.ToLower(token) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, ErrUnknownHand
}

// Token returns the outcome from the player's point of view, in the form shown
// to the player ("won" / "tied" / "lost").
func (o Outcome) Token() string {
	switch o {
	case Win:
		return "won"
	case Tie:
		return "tied"
	case Loss:
		return "lost"
	}
	return ""
}

func (o Outcome) String() string {
	return o.Token()
}
