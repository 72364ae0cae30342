package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// NonceLength is the number of random bytes drawn for each round's nonce.
// The nonce is the only thing standing between the three-value hand space and a
// brute-force preimage search against the commitment, so it must come from a
// cryptographically secure source.
const NonceLength = 32

// Round is a single commit-reveal instance: the computer's hand and a fresh
// nonce, bound into a public digest before the player answers. Computer and
// Nonce stay server-side until the round is resolved; only Commitment may be
// shown to the client beforehand.
type Round struct {
	Computer   Hand
	Nonce      string // lowercase hex of NonceLength random bytes
	Commitment string // Commitment(Nonce, Computer)
	IssuedAt   time.Time
}

// Commitment computes the digest binding a nonce and a hand:
// hex(SHA-256(nonceHex || hand token)). Anyone holding the revealed values can
// recompute it and check it against the digest shown before the reveal.
func Commitment(nonceHex string, hand Hand) string {
	sum := sha256.Sum256([]byte(nonceHex + hand.Token()))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the round's commitment from its revealed values
func (r *Round) Verify() bool {
	return Commitment(r.Nonce, r.Computer) == r.Commitment
}
