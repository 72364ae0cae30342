package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case MatchState:
		o.printMatchState(v)
	case ChallengeResult:
		o.printChallengeResult(v)
	case PlayResult:
		o.printPlayResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// MatchState response type
type MatchState struct {
	UserName   string `json:"user_name"`
	WinCount   int    `json:"win_count"`
	TieCount   int    `json:"tie_count"`
	LossCount  int    `json:"loss_count"`
	Commitment string `json:"commitment,omitempty"`
}

// ChallengeResult response type
type ChallengeResult struct {
	Commitment string `json:"commitment"`
}

// PlayResult response type
type PlayResult struct {
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

	// Verified is set locally after checking the reveal against the
	// commitment; it is not part of the server response
	Verified bool `json:"verified"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printMatchState(m MatchState) {
	fmt.Printf("Match: %s\n", m.UserName)
	fmt.Printf("Score: %d won / %d tied / %d lost\n", m.WinCount, m.TieCount, m.LossCount)
	if m.Commitment != "" {
		fmt.Printf("Pending commitment: %s\n", m.Commitment)
	} else {
		fmt.Println("No round pending")
	}
}

func (o *Output) printChallengeResult(c ChallengeResult) {
	fmt.Println("The computer has committed to its hand.")
	fmt.Printf("Commitment: %s\n", c.Commitment)
}

func (o *Output) printPlayResult(p PlayResult) {
	fmt.Printf("You played %s, the computer played %s. You %s.\n",
		p.LastHumanHand, p.LastComputerHand, p.LastResult)
	fmt.Printf("Score: %d won / %d tied / %d lost\n", p.WinCount, p.TieCount, p.LossCount)
	fmt.Printf("Nonce: %s\n", p.LastNonce)
	if p.Verified {
		fmt.Println("Proof: commitment verified, the computer did not switch hands")
	} else {
		fmt.Println("Proof: VERIFICATION FAILED - the reveal does not match the commitment")
	}
	fmt.Printf("Next commitment: %s\n", p.Commitment)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
