package ui

import (
	"agentdeck/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DismissOverlayMsg asks the model to pop the top overlay.
type DismissOverlayMsg struct{}

// HelpView lists every key binding. Dismissed with esc or the help key.
type HelpView struct {
	keys KeyMap
	help help.Model
}

var _ Overlay = (*HelpView)(nil)

// NewHelpView creates the help overlay for the given bindings.
func NewHelpView(keys KeyMap) *HelpView {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return &HelpView{keys: keys, help: h}
}

// HandleKey implements Overlay. Keys other than dismiss are swallowed.
func (v *HelpView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEsc || key.Matches(msg, v.keys.Help) {
		return func() tea.Msg { return DismissOverlayMsg{} }
	}
	return nil
}

// Render implements Overlay, centering the key reference in the area.
func (v *HelpView) Render(width, height int) string {
	box := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, RenderKeybindHelp(v.help, v.keys))
	return textutil.Fit(box, width, height)
}

// RenderKeybindHelp draws the full key reference in a titled box.
func RenderKeybindHelp(h help.Model, keys KeyMap) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render("Keys"),
		"",
		h.View(keys),
		"",
		Styles.Hint.Render("esc to close"),
	)
	return Styles.Box.Render(content)
}
