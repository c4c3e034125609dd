package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`██╗    ██╗██╗███████╗██████╗  ██████╗ ███╗   ███╗`,
	`██║    ██║██║██╔════╝██╔══██╗██╔═══██╗████╗ ████║`,
	`██║ █╗ ██║██║███████╗██║  ██║██║   ██║██╔████╔██║`,
	`██║███╗██║██║╚════██║██║  ██║██║   ██║██║╚██╔╝██║`,
	`╚███╔███╔╝██║███████║██████╔╝╚██████╔╝██║ ╚═╝ ██║`,
	` ╚══╝╚══╝ ╚═╝╚══════╝╚═════╝  ╚═════╝ ╚═╝     ╚═╝`,
}

func (a *App) renderHome() string {
	t := text(a.lib.Language())
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)

	var lines []string
	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, dimStyle.Render(t.homeSubtitle))
	lines = append(lines, "")

	lines = append(lines, a.renderQotdCard()...)
	lines = append(lines, "")

	menu := []struct {
		key   string
		label string
	}{
		{"s", t.seekGuidance},
		{"t", t.exploreThemes},
		{"f", t.favorites},
		{"j", t.journal},
		{"l", t.langSwitch},
		{"q", t.quit},
	}
	for _, m := range menu {
		lines = append(lines, "  "+keyHintStyle.Render("["+m.key+"]")+"  "+itemStyle.Render(m.label))
	}

	if a.updateVersion != "" {
		lines = append(lines, "")
		lines = append(lines, logoStyle.Render(fmt.Sprintf(t.updateAvailable, a.updateVersion)))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (a.height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}

func (a *App) renderQotdCard() []string {
	t := text(a.lib.Language())

	if a.qotdLoading {
		return []string{a.spinner.View() + " " + dimStyle.Render(t.qotdLoading)}
	}

	qotd := a.lib.QuoteOfTheDay()
	if qotd == nil {
		return []string{dimStyle.Render(t.qotdUnavailable)}
	}

	cardWidth := min(a.width-8, 64)
	if cardWidth < 20 {
		cardWidth = 20
	}

	mark := ""
	if qotd.Quote.IsFavorite {
		mark = " " + favoriteMarkStyle.Render("♥")
	}

	body := titleStyle.Render(t.qotdTitle) + mark + "\n\n" +
		quoteTextStyle.Render(wrapText(qotd.Quote.Text, cardWidth-4)) + "\n" +
		citationStyle.Render("- "+qotd.Quote.Citation)

	card := quoteCardStyle.Width(cardWidth).Render(body)
	return strings.Split(card, "\n")
}
