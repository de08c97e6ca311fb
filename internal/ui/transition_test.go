package ui

import (
	"testing"

	"agentdeck/internal/deck"
)

func settle(t *testing.T, tr *Transition, maxFrames int) int {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		tr.Tick()
		if !tr.Active() {
			return i
		}
	}
	t.Fatalf("transition did not settle within %d frames", maxFrames)
	return 0
}

func TestTransition_ForwardEntersFromRight(t *testing.T) {
	tr := NewTransition(30, true)
	tr.Start(deck.Change{From: 0, To: 1, Direction: deck.Forward})

	if !tr.Active() {
		t.Fatal("expected active transition")
	}
	if got := tr.Offset(100); got != 100 {
		t.Errorf("initial offset = %d, want 100", got)
	}
	if got := tr.Window(100); got != 0 {
		t.Errorf("initial window = %d, want 0 (outgoing slide fully visible)", got)
	}

	tr.Tick()
	if off := tr.Offset(100); off >= 100 || off <= 0 {
		t.Errorf("after one frame offset = %d, want between 0 and 100", off)
	}

	settle(t, tr, 60)
	if tr.Offset(100) != 0 || tr.Window(100) != 100 {
		t.Errorf("settled: offset=%d window=%d", tr.Offset(100), tr.Window(100))
	}
}

func TestTransition_BackwardEntersFromLeft(t *testing.T) {
	tr := NewTransition(60, true)
	tr.Start(deck.Change{From: 3, To: 2, Direction: deck.Backward})

	if got := tr.Offset(80); got != -80 {
		t.Errorf("initial offset = %d, want -80", got)
	}
	if got := tr.Window(80); got != 80 {
		t.Errorf("initial window = %d, want 80", got)
	}
	settle(t, tr, 120)
	if got := tr.Window(80); got != 0 {
		t.Errorf("settled window = %d, want 0", got)
	}
}

func TestTransition_SettlesWithinHalfASecond(t *testing.T) {
	tr := NewTransition(30, true)
	tr.Start(deck.Change{From: 0, To: 1, Direction: deck.Forward})
	if frames := settle(t, tr, 60); frames > 20 {
		t.Errorf("took %d frames at 30fps", frames)
	}
}

func TestTransition_RestartReplacesInFlight(t *testing.T) {
	tr := NewTransition(30, true)
	tr.Start(deck.Change{From: 0, To: 1, Direction: deck.Forward})
	tr.Tick()
	tr.Tick()
	tr.Start(deck.Change{From: 1, To: 0, Direction: deck.Backward})

	if tr.From() != 1 || tr.To() != 0 || tr.Direction() != deck.Backward {
		t.Errorf("from=%d to=%d dir=%v", tr.From(), tr.To(), tr.Direction())
	}
	if got := tr.Offset(50); got != -50 {
		t.Errorf("restart offset = %d, want -50", got)
	}
}

func TestTransition_Disabled(t *testing.T) {
	tr := NewTransition(30, false)
	tr.Start(deck.Change{From: 0, To: 1, Direction: deck.Forward})
	if tr.Active() || tr.Offset(100) != 0 {
		t.Error("disabled transition should never be active")
	}
}
