package match

import (
	"context"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"github.com/fairhand/fairhand/internal/dependencies/clock"
	"github.com/fairhand/fairhand/internal/dependencies/random"
	"github.com/fairhand/fairhand/internal/model"
	"github.com/fairhand/fairhand/internal/storage"
)

// Config holds configuration for the match controller
type Config struct {
	// PendingRoundMaxAge bounds how long an issued round stays answerable.
	// Zero means a pending round never expires.
	PendingRoundMaxAge time.Duration
}

// DefaultConfig returns default match configuration
func DefaultConfig() Config {
	return Config{
		PendingRoundMaxAge: 0,
	}
}

// Controller drives the per-player commit-reveal cycle: issue a committed
// round, accept the player's answer, reveal and score, issue the next round.
// Every transition for a given player runs under that player's lock, so
// concurrent requests can never score the same round twice; transitions for
// different players do not contend.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	cfg     Config

	mu    sync.Mutex
	locks map[model.PlayerID]*sync.Mutex
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
		cfg:     cfg,
		locks:   make(map[model.PlayerID]*sync.Mutex),
	}
}

// playerLock returns the mutex guarding one player's match. Entries are kept
// for the process lifetime, same as the sessions they guard.
func (c *Controller) playerLock(playerID model.PlayerID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[playerID] = lock
	}
	return lock
}

// StartMatch creates a zero-score match for the player. Called at login;
// logging in again replaces any previous match, as a fresh login always did.
func (c *Controller) StartMatch(ctx context.Context, playerID model.PlayerID, displayName string) (*model.Match, error) {
	lock := c.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	now := c.clock.Now()
	m := &model.Match{
		PlayerID:    playerID,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}

	c.logger.Info("match started", slog.String("player_id", string(playerID)))
	return m, nil
}

// GetMatch returns the player's current match
func (c *Controller) GetMatch(ctx context.Context, playerID model.PlayerID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, playerID)
}

// IssueChallenge commits to a fresh round and returns its public digest. If a
// round is already pending it is silently replaced; that discard is the one
// place reissue policy lives, should it ever need to change.
func (c *Controller) IssueChallenge(ctx context.Context, playerID model.PlayerID) (string, error) {
	lock := c.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	m, err := c.storage.GetMatch(ctx, playerID)
	if err != nil {
		return "", err
	}

	round := c.newRound()
	m.Pending = round
	m.UpdatedAt = round.IssuedAt

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return "", err
	}

	return round.Commitment, nil
}

// SubmitAnswer resolves the pending round against the player's hand. It
// reveals the committed values, increments exactly one counter, immediately
// commits to the next round, and returns the whole bundle. With nothing
// pending it returns ErrNoPendingRound and mutates nothing.
func (c *Controller) SubmitAnswer(ctx context.Context, playerID model.PlayerID, hand model.Hand) (*model.RoundResult, error) {
	lock := c.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	m, err := c.storage.GetMatch(ctx, playerID)
	if err != nil {
		return nil, err
	}

	pending := m.Pending
	if pending == nil {
		return nil, model.ErrNoPendingRound
	}

	now := c.clock.Now()
	if c.cfg.PendingRoundMaxAge > 0 && now.Sub(pending.IssuedAt) > c.cfg.PendingRoundMaxAge {
		// The answer came too late; drop the stale round. Counters stay
		// untouched and the player has to request a new challenge.
		m.Pending = nil
		m.UpdatedAt = now
		if err := c.storage.SaveMatch(ctx, m); err != nil {
			return nil, err
		}
		c.logger.Info("pending round expired",
			slog.String("player_id", string(playerID)),
			slog.Duration("age", now.Sub(pending.IssuedAt)),
		)
		return nil, model.ErrNoPendingRound
	}

	outcome := hand.Vs(pending.Computer)
	switch outcome {
	case model.Win:
		m.Wins++
	case model.Tie:
		m.Ties++
	case model.Loss:
		m.Losses++
	}

	next := c.newRound()
	m.Pending = next
	m.UpdatedAt = next.IssuedAt

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}

	roundsPlayed.WithLabelValues(outcome.Token()).Inc()
	c.logger.Info("round resolved",
		slog.String("player_id", string(playerID)),
		slog.String("outcome", outcome.Token()),
	)

	return &model.RoundResult{
		Outcome:        outcome,
		PlayerHand:     hand,
		ComputerHand:   pending.Computer,
		Nonce:          pending.Nonce,
		Commitment:     pending.Commitment,
		Wins:           m.Wins,
		Ties:           m.Ties,
		Losses:         m.Losses,
		NextCommitment: next.Commitment,
	}, nil
}

// EndMatch removes the player's match from the registry. Called at logout.
func (c *Controller) EndMatch(ctx context.Context, playerID model.PlayerID) error {
	lock := c.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	return c.storage.DeleteMatch(ctx, playerID)
}

// newRound draws a hand and a nonce and binds them into a commitment. The
// nonce comes from the injected random source, which must be
// cryptographically secure: it is what keeps the three-value hand space from
// being brute-forced against the digest before the reveal.
func (c *Controller) newRound() *model.Round {
	hand := model.Hands[c.random.Intn(len(model.Hands))]
	nonce := hex.EncodeToString(c.random.Bytes(model.NonceLength))

	return &model.Round{
		Computer:   hand,
		Nonce:      nonce,
		Commitment: model.Commitment(nonce, hand),
		IssuedAt:   c.clock.Now(),
	}
}
