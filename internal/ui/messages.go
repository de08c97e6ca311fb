package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg advances scene animation and transitions by one frame.
type frameMsg time.Time

func frameTick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
