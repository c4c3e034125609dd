package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderReflectionOverlay() string {
	t := text(a.lib.Language())

	var lines []string
	lines = append(lines, titleStyle.Render(t.reflectionEditor))
	if q := a.reflectionSubject(); q != nil && q.Text != "" {
		lines = append(lines, dimStyle.Render(truncateStr(q.Text, 60)))
	}
	lines = append(lines, "")
	lines = append(lines, a.reflection.View())

	card := overlayCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}

func (a *App) renderShareOverlay() string {
	t := text(a.lib.Language())

	var lines []string
	lines = append(lines, titleStyle.Render(t.shareTitle))
	if q := a.currentQuote(); q != nil {
		lines = append(lines, dimStyle.Render(truncateStr(q.Text, 50)))
	}
	lines = append(lines, "")
	lines = append(lines, keyHintStyle.Render("[c]")+"  "+itemStyle.Render(t.shareCopy))
	lines = append(lines, keyHintStyle.Render("[m]")+"  "+itemStyle.Render(t.shareMail))
	lines = append(lines, keyHintStyle.Render("[t]")+"  "+itemStyle.Render(t.shareTweet))

	card := overlayCardStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, card)
}
