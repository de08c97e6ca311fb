package ui

import (
	"strings"

	"agentdeck/internal/config"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a logical input, independent of the key or button that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionAdvance
	ActionRetreat
	ActionFullscreen
	ActionHelp
	ActionQuit
	ActionFocusNext
	ActionFocusPrev
	ActionPress
)

func (a Action) String() string {
	switch a {
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionFullscreen:
		return "fullscreen"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	case ActionFocusNext:
		return "focus-next"
	case ActionFocusPrev:
		return "focus-prev"
	case ActionPress:
		return "press"
	}
	return "none"
}

// KeyMap binds keys to actions. Focus keys are fixed; the rest come from config.
type KeyMap struct {
	Advance    key.Binding
	Retreat    key.Binding
	Fullscreen key.Binding
	Help       key.Binding
	Quit       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Press      key.Binding
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap builds the bindings from the keys section of the config.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Advance:    newBinding(cfg.Advance, "next"),
		Retreat:    newBinding(cfg.Retreat, "previous"),
		Fullscreen: newBinding(cfg.Fullscreen, "fullscreen"),
		Help:       newBinding(cfg.Help, "help"),
		Quit:       newBinding(cfg.Quit, "quit"),
		FocusNext:  newBinding([]string{"tab"}, "focus next button"),
		FocusPrev:  newBinding([]string{"shift+tab"}, "focus previous button"),
		Press:      newBinding([]string{"enter"}, "press button"),
	}
}

func newBinding(keys []string, desc string) key.Binding {
	norm := make([]string, len(keys))
	labels := make([]string, len(keys))
	for i, k := range keys {
		norm[i] = config.CanonicalKey(k)
		labels[i] = keyLabel(norm[i])
	}
	return key.NewBinding(
		key.WithKeys(norm...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "right":
		return "→"
	case "left":
		return "←"
	}
	return k
}

// Lookup maps a key press to its action. The first matching binding wins.
func (k KeyMap) Lookup(msg tea.KeyMsg) (Action, bool) {
	for _, b := range []struct {
		binding key.Binding
		action  Action
	}{
		{k.Advance, ActionAdvance},
		{k.Retreat, ActionRetreat},
		{k.Fullscreen, ActionFullscreen},
		{k.Help, ActionHelp},
		{k.Quit, ActionQuit},
		{k.FocusNext, ActionFocusNext},
		{k.FocusPrev, ActionFocusPrev},
		{k.Press, ActionPress},
	} {
		if key.Matches(msg, b.binding) {
			return b.action, true
		}
	}
	return ActionNone, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Retreat, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Retreat},
		{k.FocusNext, k.FocusPrev, k.Press},
		{k.Fullscreen, k.Help, k.Quit},
	}
}
