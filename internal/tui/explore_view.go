package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderExplore() string {
	t := text(a.lib.Language())
	lang := a.lib.Language()

	var lines []string
	lines = append(lines, titleStyle.Render(t.exploreTitle))
	lines = append(lines, "")

	for i, theme := range exploreThemes {
		label := theme.label(lang)
		if a.lib.Lookup(label, lang) != nil {
			label += " " + itemMetaStyle.Render("·")
		}
		if i == a.themeCursor {
			lines = append(lines, itemSelectedStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+label)
		}
	}

	if a.fetching {
		lines = append(lines, "")
		lines = append(lines, a.spinner.View()+" "+dimStyle.Render(t.processing))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
