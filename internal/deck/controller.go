// Package deck holds the navigation state machine for a fixed, linear slide deck.
//
// Core abstractions:
//   - Controller: owns the cursor, transition direction and navigation lock
//   - Navigator: the narrow capability slides get (advance, retreat, lock, read position)
//   - Stepper: internal sub-steps of one slide that hold the lock until exhausted
//   - Deck: a Controller plus per-slide step counts; owns the active Stepper
//
// Every operation is synchronous and never fails. Out-of-range moves are no-ops.
package deck

import "errors"

// ErrEmptyDeck is returned when a deck is built with no slides.
var ErrEmptyDeck = errors.New("deck: at least one slide is required")

// Direction records which way the last move went. It only selects the transition animation.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// Navigator is what a slide may do to the deck.
// Slides never get the Controller itself.
type Navigator interface {
	GoToNext()
	GoToPrev()
	SetNavigationLocked(locked bool)
	CurrentIndex() int
}

// Change describes a completed move of the cursor.
type Change struct {
	From      int
	To        int
	Direction Direction
}

// Controller tracks the current slide of a deck whose length never changes.
type Controller struct {
	total     int
	index     int
	direction Direction
	locked    bool

	// OnChange runs after every cursor move, before the mutating call returns.
	OnChange func(Change)
}

// Ensure Controller implements Navigator.
var _ Navigator = (*Controller)(nil)

// NewController creates a controller positioned on the first of total slides.
func NewController(total int) (*Controller, error) {
	if total < 1 {
		return nil, ErrEmptyDeck
	}
	return &Controller{total: total}, nil
}

// GoToNext moves forward one slide.
// Ignored while locked or on the last slide.
func (c *Controller) GoToNext() {
	if c.locked || c.index >= c.total-1 {
		return
	}
	c.move(c.index+1, Forward)
}

// GoToPrev moves back one slide.
// Ignored while locked or on the first slide.
func (c *Controller) GoToPrev() {
	if c.locked || c.index <= 0 {
		return
	}
	c.move(c.index-1, Backward)
}

func (c *Controller) move(to int, dir Direction) {
	from := c.index
	c.direction = dir
	c.index = to
	if c.OnChange != nil {
		c.OnChange(Change{From: from, To: to, Direction: dir})
	}
}

// SetNavigationLocked gates GoToNext and GoToPrev. Takes effect immediately.
func (c *Controller) SetNavigationLocked(locked bool) {
	c.locked = locked
}

// CurrentIndex returns the zero-based position of the visible slide.
func (c *Controller) CurrentIndex() int { return c.index }

// Total returns the number of slides.
func (c *Controller) Total() int { return c.total }

// Direction returns the direction of the last move, or None before any move.
func (c *Controller) Direction() Direction { return c.direction }

// Locked reports whether deck-level navigation is currently ignored.
func (c *Controller) Locked() bool { return c.locked }

// CanNext reports whether a next control should be enabled (not on the last slide).
func (c *Controller) CanNext() bool { return c.index < c.total-1 }

// CanPrev reports whether a previous control should be enabled (not on the first slide).
func (c *Controller) CanPrev() bool { return c.index > 0 }
