package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Button IDs, also the focus order.
const (
	ButtonPrev       = "prev"
	ButtonNext       = "next"
	ButtonFullscreen = "fullscreen"
)

// ControlsState is what the buttons need to know to draw themselves.
type ControlsState struct {
	CanPrev    bool
	CanNext    bool
	Fullscreen bool
}

type hitBox struct {
	id     string
	x0, x1 int // half-open column range
}

// Controls draws the navigation buttons and maps pointer presses back to them.
type Controls struct {
	Focus *FocusManager

	x, y  int
	boxes []hitBox
}

// NewControls creates the button row with nothing focused.
func NewControls() *Controls {
	return &Controls{
		Focus: &FocusManager{Order: []string{ButtonPrev, ButtonNext, ButtonFullscreen}},
	}
}

// SetOrigin records where the row is drawn on screen, for hit-testing.
func (c *Controls) SetOrigin(x, y int) {
	c.x, c.y = x, y
}

// Enabled reports whether the button accepts presses in state s.
func Enabled(id string, s ControlsState) bool {
	switch id {
	case ButtonPrev:
		return s.CanPrev
	case ButtonNext:
		return s.CanNext
	case ButtonFullscreen:
		return true
	}
	return false
}

// View renders the row and refreshes the hit boxes.
func (c *Controls) View(s ControlsState) string {
	fs := " ⤢ "
	if s.Fullscreen {
		fs = " ⤡ "
	}
	buttons := []struct {
		id    string
		label string
		gap   int
	}{
		{ButtonPrev, " ‹ ", 0},
		{ButtonNext, " › ", 1},
		{ButtonFullscreen, fs, 2},
	}

	var b strings.Builder
	c.boxes = c.boxes[:0]
	col := 0
	for _, btn := range buttons {
		b.WriteString(strings.Repeat(" ", btn.gap))
		col += btn.gap
		rendered := c.style(btn.id, s).Render(btn.label)
		w := lipgloss.Width(rendered)
		c.boxes = append(c.boxes, hitBox{id: btn.id, x0: col, x1: col + w})
		b.WriteString(rendered)
		col += w
	}
	return b.String()
}

func (c *Controls) style(id string, s ControlsState) lipgloss.Style {
	switch {
	case !Enabled(id, s):
		return Styles.ButtonDisabled
	case c.Focus.Current == id:
		return Styles.ButtonFocused
	}
	return Styles.Button
}

// HitTest returns the button under screen cell (x, y), if any.
// Disabled buttons are still reported; the caller decides what a press does.
func (c *Controls) HitTest(x, y int) (string, bool) {
	if y != c.y {
		return "", false
	}
	for _, h := range c.boxes {
		if x-c.x >= h.x0 && x-c.x < h.x1 {
			return h.id, true
		}
	}
	return "", false
}
