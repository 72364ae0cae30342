package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/fairhand/fairhand/internal/model"
	"github.com/fairhand/fairhand/internal/web/layout"
)

// PlayData holds data for the play page
type PlayData struct {
	layout.PageData
	Match      *model.Match
	Commitment string
	Result     *model.RoundResult
}

// Play renders the game page: the current commitment, the hand buttons,
// the running score, and the reveal of the previous round if there is one
func Play(data PlayData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Pick your hand</h1>
`); err != nil {
			return err
		}

		if err := scoreboard(data.Match).Render(ctx, w); err != nil {
			return err
		}

		if data.Result != nil {
			if err := reveal(data.Result).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<section class="commitment">
<p>The computer has already chosen. Its sealed choice:</p>
<code class="digest">`+templ.EscapeString(data.Commitment)+`</code>
</section>
<section class="hands">
`); err != nil {
			return err
		}

		for _, hand := range model.Hands {
			if _, err := io.WriteString(w, `<form method="post" action="/play" class="hand-form">
<input type="hidden" name="hand" value="`+hand.Token()+`">
<button type="submit" class="hand-button">`+hand.Icon()+` `+hand.Token()+`</button>
</form>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</section>
`)
		return err
	})

	return layout.Base(data.PageData, content)
}

func scoreboard(m *model.Match) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="scoreboard">
<span class="score score-wins">Wins: `+strconv.Itoa(m.Wins)+`</span>
<span class="score score-ties">Ties: `+strconv.Itoa(m.Ties)+`</span>
<span class="score score-losses">Losses: `+strconv.Itoa(m.Losses)+`</span>
</section>
`)
		return err
	})
}

func reveal(result *model.RoundResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="reveal reveal-`+result.Outcome.Token()+`">
<p class="reveal-hands">You played `+result.PlayerHand.Icon()+` `+result.PlayerHand.Token()+
			`, the computer played `+result.ComputerHand.Icon()+` `+result.ComputerHand.Token()+
			`. You `+result.Outcome.Token()+`.</p>
<details class="proof">
<summary>Verify the computer did not cheat</summary>
<p>Nonce: <code>`+templ.EscapeString(result.Nonce)+`</code></p>
<p>Commitment: <code>`+templ.EscapeString(result.Commitment)+`</code></p>
<p>SHA-256 of the nonce followed by <code>`+result.ComputerHand.Token()+`</code> reproduces the commitment shown before you chose.</p>
</details>
</section>
`)
		return err
	})
}
