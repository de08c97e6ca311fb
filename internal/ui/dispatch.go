package ui

import (
	"io"
	"log/slog"

	"agentdeck/internal/deck"
)

// Dispatcher turns navigation actions into deck operations.
//
// While the deck is locked by a stepper slide, input belongs to that slide's
// stepper; otherwise it goes straight to the controller. Keys and pointer
// clicks both come through here so they cannot disagree.
type Dispatcher struct {
	deck   *deck.Deck
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher for d.
func NewDispatcher(d *deck.Deck, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Dispatcher{deck: d, logger: logger}
}

// Navigate performs an advance or retreat. Other actions are ignored and
// reported as unhandled.
func (d *Dispatcher) Navigate(a Action) bool {
	if a != ActionAdvance && a != ActionRetreat {
		return false
	}
	ctrl := d.deck.Controller()
	if st := d.deck.Active(); st != nil && ctrl.Locked() {
		d.logger.Debug("input to stepper", "action", a.String(), "slide", ctrl.CurrentIndex(), "step", st.Step())
		if a == ActionAdvance {
			st.Advance()
		} else {
			st.Retreat()
		}
		return true
	}
	if a == ActionAdvance {
		ctrl.GoToNext()
	} else {
		ctrl.GoToPrev()
	}
	return true
}
