package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/fairhand/fairhand/internal/web/layout"
)

// LoginData holds data for the login page
type LoginData struct {
	layout.PageData
	Username string
	Error    string
	Next     string
}

// Login renders the login page: quick guest entry plus a credentials form
func Login(data LoginData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Play rock-paper-scissors</h1>
<p>The computer picks its hand before you do, and proves it.</p>
`); err != nil {
			return err
		}

		if data.Error != "" {
			if _, err := io.WriteString(w, `<div class="form-error">`+templ.EscapeString(data.Error)+`</div>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<section class="auth-section">
<h2>Play as guest</h2>
<form method="post" action="/auth/guest">
<input type="hidden" name="next" value="`+templ.EscapeString(data.Next)+`">
<label for="display_name">Name</label>
<input type="text" id="display_name" name="display_name" maxlength="20" required>
<button type="submit">Start playing</button>
</form>
</section>
<section class="auth-section">
<h2>Log in</h2>
<form method="post" action="/auth/login">
<input type="hidden" name="next" value="`+templ.EscapeString(data.Next)+`">
<label for="username">Username</label>
<input type="text" id="username" name="username" value="`+templ.EscapeString(data.Username)+`" required>
<label for="password">Password</label>
<input type="password" id="password" name="password" required>
<button type="submit">Log in</button>
</form>
<p><a href="/register">Create an account</a></p>
</section>
`)
		return err
	})

	return layout.Base(data.PageData, content)
}
