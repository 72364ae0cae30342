package cli

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStateCmd())
	cmd.AddCommand(newGameChallengeCmd())
	cmd.AddCommand(newGamePlayCmd())

	return cmd
}

func newGameStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current match state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameChallengeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenge",
		Short: "Ask the computer to commit to its next hand",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ChallengeResult

			if err := client.Post("/api/v1/game/challenge", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <rock|paper|scissors>",
		Short: "Play a hand against the committed round",
		Long: `Play a hand against the committed round.

After the server reveals its hand and nonce, the reveal is checked locally:
SHA-256 over the nonce followed by the revealed hand must reproduce the
commitment the server showed before you chose.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"hand": args[0]}
			var result PlayResult

			if err := client.Post("/api/v1/game/answer", req, &result); err != nil {
				return err
			}

			result.Verified = verifyReveal(result.LastNonce, result.LastComputerHand, result.LastCommitment)

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// verifyReveal recomputes the commitment from the revealed nonce and hand,
// independently of anything the server claims
func verifyReveal(nonce, hand, commitment string) bool {
	sum := sha256.Sum256([]byte(nonce + hand))
	return hex.EncodeToString(sum[:]) == commitment
}
