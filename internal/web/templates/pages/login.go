package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamlineup/lineup/internal/web/templates/layout"
)

// LoginData is the data for the login page
type LoginData struct {
	layout.PageData
	Username string // retained form value on a failed attempt
	Error    string
	Next     string // destination to return to after login
}

// Login renders the login page
func Login(data LoginData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Log in</h1>
`); err != nil {
			return err
		}

		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>
`, templ.EscapeString(data.Error)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `<form action="/login" method="post">
<input type="hidden" name="next" value="%s">
<label>Username <input type="text" name="username" value="%s" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Log in</button>
</form>
<p>No account? <a href="/register">Register</a>.</p>
`, templ.EscapeString(data.Next), templ.EscapeString(data.Username))
		return err
	})

	return layout.Page(data.PageData, body)
}
