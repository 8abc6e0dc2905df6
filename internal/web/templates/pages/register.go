package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/teamlineup/lineup/internal/web/templates/layout"
)

// RegisterData is the data for the registration page
type RegisterData struct {
	layout.PageData
	Username string
	Error    string
}

// Register renders the registration page
func Register(data RegisterData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Register</h1>
`); err != nil {
			return err
		}

		if data.Error != "" {
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>
`, templ.EscapeString(data.Error)); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `<form action="/register" method="post">
<label>Username <input type="text" name="username" value="%s" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Register</button>
</form>
<p>Already registered? <a href="/login">Log in</a>.</p>
`, templ.EscapeString(data.Username))
		return err
	})

	return layout.Page(data.PageData, body)
}
