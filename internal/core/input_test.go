package core

import "testing"

func TestButtonSet(t *testing.T) {
	var s ButtonSet
	if !s.Empty() {
		t.Fatal("zero ButtonSet should be empty")
	}

	s.Insert(ButtonUp)
	s.Insert(ButtonConfirm)
	if !s.Contains(ButtonUp) || !s.Contains(ButtonConfirm) {
		t.Error("Contains should report inserted buttons")
	}
	if s.Contains(ButtonDown) {
		t.Error("Contains(Down) = true, want false")
	}

	s.Remove(ButtonUp)
	if s.Contains(ButtonUp) {
		t.Error("Remove should drop the button")
	}
	if s.Contains(0) {
		t.Error("Contains(0) should be false")
	}
}

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()
	f.Press(ButtonLeft)

	if !f.Pressed(ButtonLeft) {
		t.Fatal("Pressed should be true on the first tick")
	}

	// Held across a tick: no new edge
	f.Advance()
	if f.Pressed(ButtonLeft) {
		t.Error("held button should not be pressed again")
	}

	f.Release(ButtonLeft)
	if !f.Released(ButtonLeft) {
		t.Error("Released should be true after release")
	}
	f.Advance()
	if f.Released(ButtonLeft) {
		t.Error("Released should only last one tick")
	}
}

func TestInputFrameRepeatPress(t *testing.T) {
	f := NewInputFrame()
	f.Press(ButtonConfirm)
	f.Advance()

	// Key repeat while held produces a fresh edge.
	f.Press(ButtonConfirm)
	if !f.Pressed(ButtonConfirm) {
		t.Error("repeat press should register as a new edge")
	}
}

func TestInputFrameTerminalCycle(t *testing.T) {
	// Terminal hosts: press, tick, advance, release everything.
	f := NewInputFrame()
	for i := 0; i < 3; i++ {
		f.Press(ButtonDown)
		if !f.Pressed(ButtonDown) {
			t.Fatalf("press %d was not seen", i)
		}
		f.Advance()
		f.ReleaseAll()
		if f.Pressed(ButtonDown) {
			t.Fatalf("press %d leaked into the next tick", i)
		}
	}
}

func TestButtonString(t *testing.T) {
	if ButtonConfirm.String() != "Confirm" || ButtonDebug.String() != "Debug" {
		t.Error("unexpected button names")
	}
	if Button(0).String() != "Unknown" {
		t.Error("zero button should be Unknown")
	}
}
