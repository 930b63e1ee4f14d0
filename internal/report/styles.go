package report

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	queryStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginTop(1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	cardBodyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	cardLinkStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)
)
