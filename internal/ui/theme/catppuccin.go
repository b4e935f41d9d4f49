package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Crust    = lipgloss.Color("#11111b")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Yellow   = lipgloss.Color("#f9e2af")
	Red      = lipgloss.Color("#f38ba8")
	Green    = lipgloss.Color("#a6e3a1")

	Backdrop = lipgloss.NewStyle().
		Background(Crust).
		Foreground(Text)

	Overlay = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Lavender).
		Background(Base).
		Foreground(Text).
		Padding(1, 4).
		Align(lipgloss.Center)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Padding(0, 2)

	Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Surface1).
		Padding(0, 1)

	InputError = Input.BorderForeground(Red)

	Heading   = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Countdown = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	Muted     = lipgloss.NewStyle().Foreground(Subtext0)
	Hot       = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Ok        = lipgloss.NewStyle().Foreground(Green).Bold(true)
)
