package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderJournal() string {
	t := text(a.lib.Language())
	reflections := a.lib.Reflections()

	var lines []string
	lines = append(lines, titleStyle.Render(t.journalTitle))
	lines = append(lines, "")

	if len(reflections) == 0 {
		lines = append(lines, dimStyle.Render(wrapText(t.noReflections, a.width-8)))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(lines, "\n"))
	}
	if a.journalCursor >= len(reflections) {
		a.journalCursor = len(reflections) - 1
	}

	for i, r := range reflections {
		when := itemMetaStyle.Render(relativeTime(time.UnixMilli(r.Timestamp)))
		label := truncateStr(r.Text, a.width-16) + " " + when
		if i == a.journalCursor {
			lines = append(lines, itemSelectedStyle.Render("> ")+label)
		} else {
			lines = append(lines, "  "+label)
		}
	}

	// Full text of the selected entry, with its quote when still known.
	selected := reflections[a.journalCursor]
	lines = append(lines, "")
	if q := a.lib.FindQuote(selected.QuoteID); q != nil {
		lines = append(lines, quoteTextStyle.Render(wrapText(q.Text, a.width-8)))
		lines = append(lines, citationStyle.Render("- "+q.Citation))
		lines = append(lines, "")
	}
	lines = append(lines, analysisBodyStyle.Render(wrapText(selected.Text, a.width-8)))

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
