package deck

import "testing"

func TestStepper_AdvanceThroughStepsThenHandOff(t *testing.T) {
	c := newController(t, 3)
	s := NewStepper(c, 3)
	s.Activate()
	if !c.Locked() {
		t.Fatal("Activate should lock the deck")
	}

	for want := 1; want <= 3; want++ {
		s.Advance()
		if s.Step() != want {
			t.Errorf("Step() = %d, want %d", s.Step(), want)
		}
		if c.CurrentIndex() != 0 {
			t.Errorf("deck moved to %d while steps remain", c.CurrentIndex())
		}
		if !c.Locked() {
			t.Errorf("lock released at step %d", want)
		}
	}

	s.Advance()
	if c.CurrentIndex() != 1 {
		t.Errorf("fourth advance: deck at %d, want 1", c.CurrentIndex())
	}
	if c.Locked() {
		t.Error("hand-off should release the lock")
	}
	if c.Direction() != Forward {
		t.Errorf("Direction() = %v, want forward", c.Direction())
	}
}

func TestStepper_RetreatAtZeroKeepsLock(t *testing.T) {
	c := newController(t, 3)
	c.GoToNext()
	s := NewStepper(c, 3)
	s.Activate()

	s.Retreat()
	if s.Step() != 0 {
		t.Errorf("Step() = %d, want 0", s.Step())
	}
	if !c.Locked() {
		t.Error("retreat at step 0 released the lock")
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("retreat at step 0 moved the deck to %d", c.CurrentIndex())
	}
}

func TestStepper_RetreatDecrements(t *testing.T) {
	s := NewStepper(newController(t, 2), 2)
	s.Activate()

	s.Advance()
	s.Advance()
	s.Retreat()
	if s.Step() != 1 {
		t.Errorf("Step() = %d, want 1", s.Step())
	}
}

func TestStepper_DeactivateAlwaysReleases(t *testing.T) {
	for step := 0; step <= 3; step++ {
		c := newController(t, 2)
		s := NewStepper(c, 3)
		s.Activate()
		for i := 0; i < step; i++ {
			s.Advance()
		}
		s.Deactivate()
		if c.Locked() {
			t.Errorf("step %d: still locked after Deactivate", step)
		}
	}
}

func TestStepper_ActivateResetsStep(t *testing.T) {
	c := newController(t, 2)
	s := NewStepper(c, 3)
	s.Activate()
	s.Advance()
	s.Advance()

	s.Deactivate()
	s.Activate()
	if s.Step() != 0 {
		t.Errorf("Step() = %d after reactivation, want 0", s.Step())
	}
	if !c.Locked() {
		t.Error("reactivation should lock the deck")
	}
}

func TestStepper_HandOffOnLastSlideOnlyUnlocks(t *testing.T) {
	c := newController(t, 1)
	s := NewStepper(c, 1)
	s.Activate()

	s.Advance()
	s.Advance()
	if c.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", c.CurrentIndex())
	}
	if c.Locked() {
		t.Error("hand-off on the last slide should still release the lock")
	}
}

func TestNewStepper_PanicsWithoutNavigator(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoDeck {
			t.Errorf("recovered %v, want ErrNoDeck", r)
		}
	}()
	NewStepper(nil, 3)
}

func TestRequire(t *testing.T) {
	c := newController(t, 1)
	if Require(c) != c {
		t.Error("Require should return its argument")
	}

	defer func() {
		if recover() == nil {
			t.Error("Require(nil) did not panic")
		}
	}()
	Require(nil)
}
