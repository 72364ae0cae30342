package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Hand errors
	ErrUnknownHand = errors.New("unknown hand")

	// Match errors
	ErrMatchNotFound  = errors.New("match not found")
	ErrNoPendingRound = errors.New("no round is awaiting an answer")
)
