package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary    = lipgloss.Color("#00BFFF") // Cyan: titles and selection
	colorDanger     = lipgloss.Color("#FF5252") // Red: load failures
	colorMuted      = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite      = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorSurface    = lipgloss.Color("#1E1E2E") // Dark surface: header bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Header bar style.
var styleHeader = lipgloss.NewStyle().
	Background(colorSurface).
	Foreground(colorWhite).
	Bold(true).
	Padding(0, 1)

// List row styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleRowID = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)
)

// Detail view styles.
var (
	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailSection = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				MarginTop(1)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleEvolutionCurrent = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Underline(true)
)

// Status screen styles.
var (
	styleLoading = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// Footer help styles.
var (
	styleHelpKey = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleHelpDesc = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// styleBadge renders a category label on its own color.
func styleBadge(c Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(c.Color).
		Foreground(c.Darker).
		Bold(true).
		Padding(0, 1)
}
