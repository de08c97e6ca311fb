package deck

import "errors"

// ErrNoDeck is the panic value when a slide consumes navigation without a deck.
var ErrNoDeck = errors.New("deck: navigation used outside of a deck")

// Require returns nav, or panics with ErrNoDeck if it is nil.
// A missing navigator is a wiring mistake, never a runtime condition.
func Require(nav Navigator) Navigator {
	if nav == nil {
		panic(ErrNoDeck)
	}
	return nav
}

// Stepper walks a slide through its internal steps before handing control back.
// While active it holds the navigation lock; the input dispatcher routes
// advance/retreat here instead of to the deck.
type Stepper struct {
	nav     Navigator
	step    int
	maxStep int
}

// NewStepper creates a stepper with steps 0..maxStep.
// Panics with ErrNoDeck when nav is nil.
func NewStepper(nav Navigator, maxStep int) *Stepper {
	if maxStep < 0 {
		maxStep = 0
	}
	return &Stepper{nav: Require(nav), maxStep: maxStep}
}

// Activate takes the navigation lock and starts over at step 0.
func (s *Stepper) Activate() {
	s.step = 0
	s.nav.SetNavigationLocked(true)
}

// Advance moves to the next internal step. Past the last step it releases
// the lock and asks the deck for the next slide.
func (s *Stepper) Advance() {
	if s.step < s.maxStep {
		s.step++
		return
	}
	s.nav.SetNavigationLocked(false)
	s.nav.GoToNext()
}

// Retreat moves to the previous internal step.
// At step 0 it does nothing: the lock stays held and the deck does not move.
func (s *Stepper) Retreat() {
	if s.step > 0 {
		s.step--
	}
}

// Deactivate releases the lock regardless of the current step.
func (s *Stepper) Deactivate() {
	s.nav.SetNavigationLocked(false)
}

// Step returns the current internal step.
func (s *Stepper) Step() int { return s.step }

// MaxStep returns the last internal step.
func (s *Stepper) MaxStep() int { return s.maxStep }
