package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FlashMessage is a one-shot notice shown on the next page load
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData carries the data every page needs
type PageData struct {
	Title    string
	Username string // empty when nobody is logged in
	Flash    *FlashMessage
}

// Page wraps a body component in the shared page shell
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - Lineup</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
`, templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := nav(data).Render(ctx, w); err != nil {
			return err
		}

		if data.Flash != nil {
			if _, err := fmt.Fprintf(w, `<div class="flash flash-%s">%s</div>
`, templ.EscapeString(data.Flash.Type), templ.EscapeString(data.Flash.Message)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<main>
`); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
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
		if _, err := io.WriteString(w, `<nav>
<a href="/" class="brand">Lineup</a>
`); err != nil {
			return err
		}

		if data.Username != "" {
			if _, err := fmt.Fprintf(w, `<a href="/lineup">Lineup</a>
<a href="/add_player">Add player</a>
<span class="user">%s</span>
<a href="/logout">Log out</a>
`, templ.EscapeString(data.Username)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<a href="/login">Log in</a>
<a href="/register">Register</a>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</nav>
`)
		return err
	})
}
