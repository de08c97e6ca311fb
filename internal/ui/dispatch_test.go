package ui

import (
	"testing"

	"agentdeck/internal/deck"
)

func newTestDeck(t *testing.T, steps ...int) *deck.Deck {
	t.Helper()
	d, err := deck.NewDeck(steps)
	if err != nil {
		t.Fatalf("NewDeck: %v", err)
	}
	return d
}

func TestDispatcher_PlainSlidesGoToController(t *testing.T) {
	d := newTestDeck(t, 0, 0, 0)
	disp := NewDispatcher(d, nil)

	disp.Navigate(ActionAdvance)
	disp.Navigate(ActionAdvance)
	disp.Navigate(ActionAdvance)
	if d.Index() != 2 {
		t.Errorf("index = %d, want 2 (clamped at last slide)", d.Index())
	}
	disp.Navigate(ActionRetreat)
	if d.Index() != 1 {
		t.Errorf("index = %d, want 1", d.Index())
	}
}

func TestDispatcher_StepperOwnsInputWhileLocked(t *testing.T) {
	d := newTestDeck(t, 0, 3, 0)
	disp := NewDispatcher(d, nil)

	disp.Navigate(ActionAdvance)
	if d.Index() != 1 || !d.Controller().Locked() {
		t.Fatalf("expected locked stepper slide, index=%d locked=%v", d.Index(), d.Controller().Locked())
	}

	for want := 1; want <= 3; want++ {
		disp.Navigate(ActionAdvance)
		if d.Index() != 1 || d.Step() != want {
			t.Fatalf("advance %d: index=%d step=%d", want, d.Index(), d.Step())
		}
	}

	disp.Navigate(ActionRetreat)
	if d.Step() != 2 {
		t.Errorf("retreat: step = %d, want 2", d.Step())
	}
	disp.Navigate(ActionAdvance)
	disp.Navigate(ActionAdvance)
	if d.Index() != 2 || d.Controller().Locked() {
		t.Errorf("hand-off: index=%d locked=%v", d.Index(), d.Controller().Locked())
	}
}

func TestDispatcher_RetreatAtFirstStepStays(t *testing.T) {
	d := newTestDeck(t, 0, 2)
	disp := NewDispatcher(d, nil)
	disp.Navigate(ActionAdvance)

	disp.Navigate(ActionRetreat)
	if d.Index() != 1 || d.Step() != 0 || !d.Controller().Locked() {
		t.Errorf("index=%d step=%d locked=%v", d.Index(), d.Step(), d.Controller().Locked())
	}
}

func TestDispatcher_IgnoresOtherActions(t *testing.T) {
	d := newTestDeck(t, 0, 0)
	disp := NewDispatcher(d, nil)
	for _, a := range []Action{ActionHelp, ActionQuit, ActionFullscreen, ActionPress} {
		if disp.Navigate(a) {
			t.Errorf("%v should not be handled", a)
		}
	}
	if d.Index() != 0 {
		t.Errorf("index moved to %d", d.Index())
	}
}
