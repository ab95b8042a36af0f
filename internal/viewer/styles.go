package viewer

import "github.com/charmbracelet/lipgloss"

// Styles are defined at package level so they're allocated once, not on
// every View() call. The accent color is the one knob exposed through
// configuration; everything else is fixed.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")) // bright blue

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	taglineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	emphasisStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	headerCellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	captionStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("8"))

	codeBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	notesBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 1)

	// fadeStyle dims the slide body while a transition is in flight.
	fadeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// accentStyle builds the style for the configured accent color, used for
// the active slide indicator and diagram art.
func accentStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
