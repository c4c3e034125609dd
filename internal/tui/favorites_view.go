package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderFavorites() string {
	t := text(a.lib.Language())
	favorites := a.lib.Favorites()

	var lines []string
	lines = append(lines, titleStyle.Render(t.favoritesTitle))
	lines = append(lines, "")

	if len(favorites) == 0 {
		lines = append(lines, dimStyle.Render(wrapText(t.noFavorites, a.width-8)))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
	}
	if a.favCursor >= len(favorites) {
		a.favCursor = len(favorites) - 1
	}

	for i, f := range favorites {
		label := truncateStr(f.Text, a.width-12) + " " + itemMetaStyle.Render("- "+f.Citation)
		if i == a.favCursor {
			lines = append(lines, itemSelectedStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+label)
		}
	}

	lines = append(lines, "")
	lines = append(lines, a.renderQuoteCard(favorites[a.favCursor])...)

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
