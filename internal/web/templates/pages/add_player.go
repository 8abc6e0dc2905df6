package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/web/templates/layout"
)

// AddPlayerData is the data for the add-player page
type AddPlayerData struct {
	layout.PageData
	Players []*model.Player
}

// AddPlayer renders the add-player form together with the current roster
func AddPlayer(data AddPlayerData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Add player</h1>
<form action="/add_player" method="post" enctype="multipart/form-data">
<label>Name <input type="text" name="name" required></label>
<label>Number <input type="text" name="number" required></label>
<label>Photo <input type="file" name="photo" accept="image/*" required></label>
<button type="submit">Add</button>
</form>
`); err != nil {
			return err
		}

		if len(data.Players) == 0 {
			return nil
		}

		if _, err := io.WriteString(w, `<h2>Current roster</h2>
<table class="roster">
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
