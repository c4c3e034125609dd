package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

func (a *App) renderQuotePage() string {
	t := text(a.lib.Language())
	results := a.lib.Results()

	if len(results) == 0 {
		return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center,
			dimStyle.Render(t.errFetch))
	}
	if a.quoteCursor >= len(results) {
		a.quoteCursor = len(results) - 1
	}

	var lines []string
	lines = append(lines, titleStyle.Render(t.guidanceFound)+"  "+
		dimStyle.Render(fmt.Sprintf(t.quoteIndicator, a.quoteCursor+1, len(results))))
	lines = append(lines, "")
	lines = append(lines, a.renderQuoteCard(results[a.quoteCursor])...)

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

// renderQuoteCard renders a full quote with citation and analysis, plus
// favorite and reflection markers.
func (a *App) renderQuoteCard(q quote.Quote) []string {
	t := text(a.lib.Language())

	cardWidth := min(a.width-8, 76)
	if cardWidth < 24 {
		cardWidth = 24
	}
	inner := cardWidth - 4

	marks := ""
	if q.IsFavorite {
		marks += " " + favoriteMarkStyle.Render("♥")
	}
	if _, ok := a.lib.Reflection(q.ID); ok {
		marks += " " + itemMetaStyle.Render("✎")
	}

	body := quoteTextStyle.Render(wrapText(q.Text, inner)) + marks + "\n" +
		citationStyle.Render("- "+q.Citation) + "\n\n" +
		analysisLabelStyle.Render(t.analysis) + "\n" +
		analysisBodyStyle.Render(wrapText(q.Analysis, inner))

	return strings.Split(quoteCardStyle.Width(cardWidth).Render(body), "\n")
}
