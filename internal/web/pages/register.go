package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/fairhand/fairhand/internal/web/layout"
)

// RegisterData holds data for the registration page
type RegisterData struct {
	layout.PageData
	Username    string
	DisplayName string
	Error       string
	FieldErrors map[string]string
}

// Register renders the account registration page
func Register(data RegisterData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Create an account</h1>
`); err != nil {
			return err
		}

		if data.Error != "" {
			if _, err := io.WriteString(w, `<div class="form-error">`+templ.EscapeString(data.Error)+`</div>
`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<form method="post" action="/auth/register">
`); err != nil {
			return err
		}

		fields := []struct {
			id, label, typ, value string
		}{
			{"username", "Username", "text", data.Username},
			{"display_name", "Display name", "text", data.DisplayName},
			{"password", "Password", "password", ""},
			{"password_confirm", "Confirm password", "password", ""},
		}
		for _, f := range fields {
			if _, err := io.WriteString(w, `<label for="`+f.id+`">`+f.label+`</label>
<input type="`+f.typ+`" id="`+f.id+`" name="`+f.id+`" value="`+templ.EscapeString(f.value)+`" required>
`); err != nil {
				return err
			}
			if msg, ok := data.FieldErrors[f.id]; ok {
				if _, err := io.WriteString(w, `<div class="field-error">`+templ.EscapeString(msg)+`</div>
`); err != nil {
					return err
				}
			}
		}

		_, err := io.WriteString(w, `<button type="submit">Register</button>
</form>
<p><a href="/login">Back to login</a></p>
`)
		return err
	})

	return layout.Base(data.PageData, content)
}
