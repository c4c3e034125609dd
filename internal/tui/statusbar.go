package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderStatusBar(hints string) string {
	left := " " + string(a.lib.Language())
	if a.fetching {
		left += " " + a.spinner.View()
	}

	switch {
	case a.toast != "" && a.toastError:
		left += "  " + toastErrorStyle.Render(a.toast)
	case a.toast != "":
		left += "  " + toastSuccessStyle.Render(a.toast)
	case a.err != nil:
		left += "  " + toastErrorStyle.Render(a.errText())
	}

	right := " " + hints + " "

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(a.width).Render(bar)
}
