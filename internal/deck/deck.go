package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidSteps is returned when a slide declares a negative step count.
var ErrInvalidSteps = errors.New("deck: step count must not be negative")

// Deck composes a Controller with per-slide step counts.
// Plain slides have zero steps; stepper slides get a Stepper while they are visible.
type Deck struct {
	ctrl      *Controller
	steps     []int
	active    *Stepper
	observers []func(Change)
}

// NewDeck builds a deck with one entry per slide. steps[i] > 0 makes slide i a
// stepper slide with that many internal steps after its first state.
// The first slide is activated immediately.
func NewDeck(steps []int) (*Deck, error) {
	for i, n := range steps {
		if n < 0 {
			return nil, fmt.Errorf("slide %d: %w", i, ErrInvalidSteps)
		}
	}
	ctrl, err := NewController(len(steps))
	if err != nil {
		return nil, err
	}
	d := &Deck{
		ctrl:  ctrl,
		steps: append([]int(nil), steps...),
	}
	ctrl.OnChange = d.handleChange
	d.activate(0)
	return d, nil
}

// Observe registers fn to run after each slide change, in registration order.
func (d *Deck) Observe(fn func(Change)) {
	d.observers = append(d.observers, fn)
}

// handleChange tears down the outgoing slide before the incoming one activates.
func (d *Deck) handleChange(c Change) {
	if d.active != nil {
		d.active.Deactivate()
		d.active = nil
	}
	d.activate(c.To)
	for _, fn := range d.observers {
		fn(c)
	}
}

func (d *Deck) activate(index int) {
	if d.steps[index] == 0 {
		return
	}
	d.active = NewStepper(d.ctrl, d.steps[index])
	d.active.Activate()
}

// Close releases whatever the visible slide holds.
func (d *Deck) Close() {
	if d.active != nil {
		d.active.Deactivate()
		d.active = nil
	}
}

// Controller returns the underlying controller.
func (d *Deck) Controller() *Controller { return d.ctrl }

// Navigator returns the capability handed to slide content.
func (d *Deck) Navigator() Navigator { return d.ctrl }

// Active returns the visible slide's stepper, or nil for a plain slide.
func (d *Deck) Active() *Stepper { return d.active }

// Step returns the visible slide's internal step (always 0 for plain slides).
func (d *Deck) Step() int {
	if d.active == nil {
		return 0
	}
	return d.active.Step()
}

// Index is shorthand for Controller().CurrentIndex().
func (d *Deck) Index() int { return d.ctrl.CurrentIndex() }

// Total is shorthand for Controller().Total().
func (d *Deck) Total() int { return d.ctrl.Total() }
