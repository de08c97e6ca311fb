package ui

import (
	"math"

	"agentdeck/internal/deck"

	"github.com/charmbracelet/harmonica"
)

// Spring parameters for the slide-in: stiffness 300 and damping 30 on a unit
// mass, which gives a slightly underdamped settle.
const (
	springStiffness = 300.0
	springDamping   = 30.0
)

// Settling thresholds, in canvas widths and canvas widths per second.
const (
	restPosition = 0.002
	restVelocity = 0.01
)

// Transition animates the incoming slide from one canvas width off-screen to
// rest. Navigation state never waits on it; it only offsets rendering.
type Transition struct {
	spring  harmonica.Spring
	enabled bool

	active    bool
	direction deck.Direction
	from      int
	to        int
	pos       float64
	vel       float64
}

// NewTransition creates a transition clocked at fps frames per second.
func NewTransition(fps int, enabled bool) *Transition {
	omega := math.Sqrt(springStiffness)
	zeta := springDamping / (2 * omega)
	return &Transition{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		enabled: enabled,
	}
}

// Start begins a slide-in for c, replacing any transition in flight.
func (t *Transition) Start(c deck.Change) {
	if !t.enabled || c.Direction == deck.None {
		return
	}
	t.active = true
	t.direction = c.Direction
	t.from = c.From
	t.to = c.To
	t.vel = 0
	if c.Direction == deck.Forward {
		t.pos = 1
	} else {
		t.pos = -1
	}
}

// Tick advances the spring by one frame.
func (t *Transition) Tick() {
	if !t.active {
		return
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, 0)
	if math.Abs(t.pos) < restPosition && math.Abs(t.vel) < restVelocity {
		t.active = false
		t.pos, t.vel = 0, 0
	}
}

// Active reports whether a transition is in flight.
func (t *Transition) Active() bool { return t.active }

// Direction returns the direction of the current or last transition.
func (t *Transition) Direction() deck.Direction { return t.direction }

// From returns the index of the outgoing slide.
func (t *Transition) From() int { return t.from }

// To returns the index of the incoming slide.
func (t *Transition) To() int { return t.to }

// Offset is the incoming slide's horizontal position in columns for a canvas
// width wide: positive while entering from the right.
func (t *Transition) Offset(width int) int {
	if !t.active {
		return 0
	}
	return int(math.Round(t.pos * float64(width)))
}

// Window returns the column at which to cut a width-wide view out of the two
// slides laid side by side, earlier slide on the left.
func (t *Transition) Window(width int) int {
	off := t.Offset(width)
	if t.direction == deck.Backward {
		return -off
	}
	return width - off
}
