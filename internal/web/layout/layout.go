package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/fairhand/fairhand/internal/model"
)

// FlashMessage is a one-shot notification shown at the top of the next page
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData holds data common to all pages
type PageData struct {
	Title  string
	Player *model.Player
	Flash  *FlashMessage
}

// Base wraps page content in the common HTML shell: head, nav, flash banner
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`+templ.EscapeString(data.Title)+` - Fairhand</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
`); err != nil {
			return err
		}

		if err := nav(data).Render(ctx, w); err != nil {
			return err
		}

		if data.Flash != nil {
			if err := flashBanner(data.Flash).Render(ctx, w); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main>
</body>
</html>
`)
		return err
	})
}

func nav(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="navbar">
<a href="/" class="brand">Fairhand</a>
<div class="nav-right">
`); err != nil {
			return err
		}

		if data.Player != nil {
			if _, err := io.WriteString(w, `<span class="player-name">`+templ.EscapeString(data.Player.DisplayName)+`</span>
<form method="post" action="/auth/logout" class="inline-form">
<button type="submit" class="link-button">Log out</button>
</form>
`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/login">Log in</a>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>
</nav>
`)
		return err
	})
}

func flashBanner(flash *FlashMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="flash flash-`+templ.EscapeString(flash.Type)+`">`+
			templ.EscapeString(flash.Message)+`</div>
`)
		return err
	})
}
