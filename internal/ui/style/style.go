// internal/ui/style/style.go
package style

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorAccent  = lipgloss.Color("86")
	ColorMuted   = lipgloss.Color("241")
	ColorUp      = lipgloss.Color("42")
	ColorDown    = lipgloss.Color("196")
	ColorWarning = lipgloss.Color("214")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 2)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(1, 2)

	Label = lipgloss.NewStyle().Foreground(ColorMuted)

	ValueUp   = lipgloss.NewStyle().Foreground(ColorUp)
	ValueDown = lipgloss.NewStyle().Foreground(ColorDown)
	Warning   = lipgloss.NewStyle().Foreground(ColorWarning)

	StatusOnline  = lipgloss.NewStyle().Foreground(ColorUp).Bold(true)
	StatusOffline = lipgloss.NewStyle().Foreground(ColorDown).Bold(true)

	HelpBar = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)

// Signed colors a numeric string green or red by sign.
func Signed(s string, positive bool) string {
	if positive {
		return ValueUp.Render(s)
	}
	return ValueDown.Render(s)
}
