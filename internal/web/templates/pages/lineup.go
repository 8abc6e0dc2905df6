package pages

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/web/templates/layout"
)

// LineupData is the data for the lineup page
type LineupData struct {
	layout.PageData
	Players []*model.Player
}

// Lineup renders the team lineup
func Lineup(data LineupData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Lineup</h1>
`); err != nil {
			return err
		}

		if len(data.Players) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No players yet. <a href="/add_player">Add the first one</a>.</p>
`)
			return err
		}

		if _, err := io.WriteString(w, `<table class="roster">
<thead><tr><th>Photo</th><th>Name</th><th>Number</th><th></th></tr></thead>
<tbody>
`); err != nil {
			return err
		}

		for _, p := range data.Players {
			if err := playerRow(w, p); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</tbody>
</table>
`)
		return err
	})

	return layout.Page(data.PageData, body)
}

func playerRow(w io.Writer, p *model.Player) error {
	_, err := fmt.Fprintf(w, `<tr class="player">
<td><img src="/uploads/%s" alt="%s" class="photo"></td>
<td>%s</td>
<td>#%s</td>
<td><form action="/delete_player/%d" method="post"><button type="submit">Delete</button></form></td>
</tr>
`,
		url.PathEscape(p.PhotoKey),
		templ.EscapeString(p.Name),
		templ.EscapeString(p.Name),
		templ.EscapeString(p.Number),
		int64(p.ID),
	)
	return err
}
