package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderInput() string {
	t := text(a.lib.Language())

	var lines []string
	lines = append(lines, titleStyle.Render(t.seekGuidance))
	lines = append(lines, "")
	lines = append(lines, a.themeInput.View())
	lines = append(lines, "")

	if a.fetching {
		lines = append(lines, a.spinner.View()+" "+dimStyle.Render(t.processing+" ("+a.pendingTheme+")"))
		lines = append(lines, "")
	}

	lines = append(lines, analysisLabelStyle.Render(t.searchHistory))
	history := a.lib.History()
	if len(history) == 0 {
		lines = append(lines, dimStyle.Render("  "+t.noHistory))
	}
	for i, h := range history {
		label := h.Theme + " " + itemMetaStyle.Render("("+string(h.Language)+" · "+relativeTime(time.UnixMilli(h.Timestamp))+")")
		if i == a.historyCursor {
			lines = append(lines, itemSelectedStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+label)
		}
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
