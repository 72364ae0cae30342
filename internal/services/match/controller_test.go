package match

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairhand/fairhand/internal/dependencies/clock"
	"github.com/fairhand/fairhand/internal/dependencies/mocks"
	"github.com/fairhand/fairhand/internal/dependencies/random"
	"github.com/fairhand/fairhand/internal/model"
	"github.com/fairhand/fairhand/internal/storage/memory"
	"github.com/fairhand/fairhand/internal/testutil"
)

const testPlayer = model.PlayerID("p_test")

// newMockedController wires a controller with mocked clock and random so tests
// can force the committed hand and nonce
func newMockedController(cfg Config) (*Controller, *mocks.MockRandom, *mocks.MockClock) {
	rnd := mocks.NewMockRandom()
	clk := mocks.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	c := NewController(memory.New(), clk, rnd, cfg, testutil.NopLogger())
	return c, rnd, clk
}

// newLiveController wires a controller with the production random source
func newLiveController() *Controller {
	return NewController(memory.New(), clock.New(), random.New(), DefaultConfig(), testutil.NopLogger())
}

// queueRound pre-loads the mock random so the next issued round commits to the
// given hand with a fixed nonce
func queueRound(rnd *mocks.MockRandom, hand model.Hand) {
	idx := 0
	for i, h := range model.Hands {
		if h == hand {
			idx = i
		}
	}
	rnd.QueueIntn(idx)
	rnd.QueueBytes(make([]byte, model.NonceLength))
}

func TestStartMatchBeginsAtZero(t *testing.T) {
	c, _, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	m, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	assert.Equal(t, "Alice", m.DisplayName)
	assert.Zero(t, m.Wins)
	assert.Zero(t, m.Ties)
	assert.Zero(t, m.Losses)
	assert.Nil(t, m.Pending)
}

func TestIssueChallengeCommitsToARound(t *testing.T) {
	c, rnd, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Scissors)
	commitment, err := c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	assert.Len(t, commitment, 64)

	m, err := c.GetMatch(ctx, testPlayer)
	require.NoError(t, err)
	require.NotNil(t, m.Pending)
	assert.Equal(t, commitment, m.Pending.Commitment)
	assert.Equal(t, model.Scissors, m.Pending.Computer)
	assert.True(t, m.Pending.Verify())
}

func TestIssueChallengeForUnknownPlayerFails(t *testing.T) {
	c, _, _ := newMockedController(DefaultConfig())

	_, err := c.IssueChallenge(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrMatchNotFound)
}

func TestReissueReplacesPendingRound(t *testing.T) {
	c, rnd, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Rock)
	first, err := c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	rnd.QueueIntn(1)
	rnd.QueueBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32})
	second, err := c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	m, _ := c.GetMatch(ctx, testPlayer)
	assert.Equal(t, second, m.Pending.Commitment, "the earlier commitment is discarded")
}

func TestSubmitAnswerScoresLossExactlyOnce(t *testing.T) {
	c, rnd, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	// Computer commits rock; scissors loses against it
	queueRound(rnd, model.Rock)
	_, err = c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	queueRound(rnd, model.Paper)
	result, err := c.SubmitAnswer(ctx, testPlayer, model.Scissors)
	require.NoError(t, err)

	assert.Equal(t, model.Loss, result.Outcome)
	assert.Equal(t, 0, result.Wins)
	assert.Equal(t, 0, result.Ties)
	assert.Equal(t, 1, result.Losses)
}

func TestSubmitAnswerRevealsCommittedValues(t *testing.T) {
	c, rnd, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Scissors)
	commitment, err := c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	queueRound(rnd, model.Rock)
	result, err := c.SubmitAnswer(ctx, testPlayer, model.Rock)
	require.NoError(t, err)

	assert.Equal(t, model.Win, result.Outcome)
	assert.Equal(t, model.Scissors, result.ComputerHand)
	assert.Equal(t, commitment, result.Commitment)

	// The revealed values reproduce the digest shown before the answer
	assert.Equal(t, commitment, model.Commitment(result.Nonce, result.ComputerHand))

	// A fresh round is already pending for the next turn
	assert.NotEmpty(t, result.NextCommitment)
	assert.NotEqual(t, commitment, result.NextCommitment)

	m, _ := c.GetMatch(ctx, testPlayer)
	assert.Equal(t, result.NextCommitment, m.Pending.Commitment)
}

func TestSubmitAnswerTie(t *testing.T) {
	c, rnd, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Paper)
	_, err = c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	queueRound(rnd, model.Paper)
	result, err := c.SubmitAnswer(ctx, testPlayer, model.Paper)
	require.NoError(t, err)

	assert.Equal(t, model.Tie, result.Outcome)
	assert.Equal(t, 1, result.Ties)
	assert.Equal(t, 0, result.Wins)
	assert.Equal(t, 0, result.Losses)
}

func TestSubmitAnswerWithoutChallengeFails(t *testing.T) {
	c, _, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	_, err = c.SubmitAnswer(ctx, testPlayer, model.Rock)
	assert.ErrorIs(t, err, model.ErrNoPendingRound)

	m, _ := c.GetMatch(ctx, testPlayer)
	assert.Zero(t, m.Wins)
	assert.Zero(t, m.Ties)
	assert.Zero(t, m.Losses)
}

func TestSubmitAnswerForUnknownPlayerFails(t *testing.T) {
	c, _, _ := newMockedController(DefaultConfig())

	_, err := c.SubmitAnswer(context.Background(), "nobody", model.Rock)
	assert.ErrorIs(t, err, model.ErrMatchNotFound)
}

func TestPendingRoundExpires(t *testing.T) {
	c, rnd, clk := newMockedController(Config{PendingRoundMaxAge: time.Minute})
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Rock)
	_, err = c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	clk.Advance(2 * time.Minute)

	_, err = c.SubmitAnswer(ctx, testPlayer, model.Paper)
	assert.ErrorIs(t, err, model.ErrNoPendingRound)

	// The stale round is gone and nothing was scored
	m, _ := c.GetMatch(ctx, testPlayer)
	assert.Nil(t, m.Pending)
	assert.Zero(t, m.Wins+m.Ties+m.Losses)
}

func TestPendingRoundDoesNotExpireByDefault(t *testing.T) {
	c, rnd, clk := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Rock)
	_, err = c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	clk.Advance(1000 * time.Hour)

	queueRound(rnd, model.Rock)
	_, err = c.SubmitAnswer(ctx, testPlayer, model.Paper)
	assert.NoError(t, err)
}

func TestEndMatchRemovesFromRegistry(t *testing.T) {
	c, _, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	require.NoError(t, c.EndMatch(ctx, testPlayer))

	_, err = c.GetMatch(ctx, testPlayer)
	assert.ErrorIs(t, err, model.ErrMatchNotFound)
}

func TestRestartResetsCounters(t *testing.T) {
	c, rnd, _ := newMockedController(DefaultConfig())
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)

	queueRound(rnd, model.Rock)
	_, err = c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)
	queueRound(rnd, model.Rock)
	_, err = c.SubmitAnswer(ctx, testPlayer, model.Paper)
	require.NoError(t, err)

	m, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)
	assert.Zero(t, m.Wins)
	assert.Nil(t, m.Pending)
}

func TestCommitmentsAreUnique(t *testing.T) {
	c := newLiveController()

	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		round := c.newRound()
		_, dup := seen[round.Commitment]
		require.False(t, dup, "duplicate commitment after %d rounds", i)
		seen[round.Commitment] = struct{}{}
	}
}

func TestConcurrentSubmitsScoreEachRoundOnce(t *testing.T) {
	c := newLiveController()
	ctx := context.Background()

	_, err := c.StartMatch(ctx, testPlayer, "Alice")
	require.NoError(t, err)
	_, err = c.IssueChallenge(ctx, testPlayer)
	require.NoError(t, err)

	const workers = 20
	results := make([]*model.RoundResult, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.SubmitAnswer(ctx, testPlayer, model.Rock)
		}(i)
	}
	wg.Wait()

	// Every submission resolved one round, each against a distinct
	// commitment: no round was ever scored twice
	revealed := make(map[string]struct{}, workers)
	succeeded := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		succeeded++
		_, dup := revealed[results[i].Commitment]
		require.False(t, dup, "round scored twice")
		revealed[results[i].Commitment] = struct{}{}
	}

	m, err := c.GetMatch(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, succeeded, m.Wins+m.Ties+m.Losses)
}

func TestConcurrentPlayersDoNotInterfere(t *testing.T) {
	c := newLiveController()
	ctx := context.Background()

	players := []model.PlayerID{"p_a", "p_b", "p_c", "p_d"}
	for _, p := range players {
		_, err := c.StartMatch(ctx, p, string(p))
		require.NoError(t, err)
		_, err = c.IssueChallenge(ctx, p)
		require.NoError(t, err)
	}

	const roundsPerPlayer = 25
	var wg sync.WaitGroup
	for _, p := range players {
		wg.Add(1)
		go func(p model.PlayerID) {
			defer wg.Done()
			for i := 0; i < roundsPerPlayer; i++ {
				_, err := c.SubmitAnswer(ctx, p, model.Paper)
				assert.NoError(t, err)
			}
		}(p)
	}
	wg.Wait()

	for _, p := range players {
		m, err := c.GetMatch(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, roundsPerPlayer, m.Wins+m.Ties+m.Losses)
	}
}
