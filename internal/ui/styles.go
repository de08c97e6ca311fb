package ui

import "github.com/charmbracelet/lipgloss"

// Chrome colors. Slides bring their own palettes.
const (
	ColorAccent    = "#3b82f6" // progress fill, focused button
	ColorHighlight = "#a855f7" // help keys, box border
	ColorTrack     = "#27272a" // progress track
	ColorMuted     = "241"
	ColorText      = "252"
	ColorDisabled  = "238"
	ColorButton    = "#3f3f46"
)

// Styles contains the shared styles for the deck chrome.
var Styles = struct {
	Title  lipgloss.Style
	Box    lipgloss.Style
	Muted  lipgloss.Style
	Hint   lipgloss.Style
	Status lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorButton)),
	ButtonFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(ColorAccent)),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabled)).
		Background(lipgloss.Color(ColorTrack)),
}
