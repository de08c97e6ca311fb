package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is drawn over the stage and takes key input while it is open.
type Overlay interface {
	HandleKey(tea.KeyMsg) tea.Cmd
	// Render draws the overlay into exactly width×height cells.
	Render(width, height int) string
}

// OverlayStack holds open overlays. The topmost receives keys first.
type OverlayStack struct {
	stack []Overlay
}

func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	return s.stack[len(s.stack)-1], true
}

func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// HandleKey routes msg to the top overlay. It reports false when none is open.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	top, ok := s.Peek()
	if !ok {
		return nil, false
	}
	return top.HandleKey(msg), true
}
