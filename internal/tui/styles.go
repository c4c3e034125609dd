package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorAccent    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	colorText      = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#E5E5E5"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#5C5C5C", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorRed       = lipgloss.AdaptiveColor{Light: "#D92D20", Dark: "#F97066"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	quoteCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	quoteTextStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Italic(true)

	citationStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	analysisLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Bold(true)

	analysisBodyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorText)

	itemMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	favoriteMarkStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	keyHintStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	overlayCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(1, 2)
)
