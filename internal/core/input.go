package core

// Button is a logical controller button. Buttons are bit flags so that a
// whole controller state fits in a ButtonSet.
type Button uint8

const (
	ButtonConfirm Button = 1 << iota // Enter/Space - pick up or swap
	ButtonCancel                     // Esc - pause/resume the board
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonDebug // F2 - assert no animations are in flight
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonConfirm:
		return "Confirm"
	case ButtonCancel:
		return "Cancel"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// ButtonSet is a set of buttons stored as a bitmask.
type ButtonSet uint8

// Contains reports whether every button in b is in the set.
func (s ButtonSet) Contains(b Button) bool {
	return b != 0 && uint8(s)&uint8(b) == uint8(b)
}

// Insert adds b to the set.
func (s *ButtonSet) Insert(b Button) {
	*s |= ButtonSet(b)
}

// Remove deletes b from the set.
func (s *ButtonSet) Remove(b Button) {
	*s &^= ButtonSet(b)
}

// Empty reports whether no buttons are in the set.
func (s ButtonSet) Empty() bool {
	return s == 0
}

// InputFrame is the controller state for one simulation tick.
// Current holds buttons that are down now, Previous holds the buttons that
// were down at the end of the last tick.
type InputFrame struct {
	Current  ButtonSet
	Previous ButtonSet
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Pressed returns true if b went down during this tick.
func (f InputFrame) Pressed(b Button) bool {
	return f.Current.Contains(b) && !f.Previous.Contains(b)
}

// Released returns true if b went up during this tick.
func (f InputFrame) Released(b Button) bool {
	return f.Previous.Contains(b) && !f.Current.Contains(b)
}

// Press marks b as down. A press of a button that was already down last tick
// is forgotten from Previous so key-repeat produces a fresh edge.
func (f *InputFrame) Press(b Button) {
	if f.Previous.Contains(b) {
		f.Previous.Remove(b)
	}
	f.Current.Insert(b)
}

// Release marks b as up.
func (f *InputFrame) Release(b Button) {
	f.Current.Remove(b)
}

// ReleaseAll marks every button as up. Terminal hosts never see key-up
// events, so they release everything after each tick.
func (f *InputFrame) ReleaseAll() {
	f.Current = 0
}

// Advance ends the tick: the current state becomes the previous state.
func (f *InputFrame) Advance() {
	f.Previous = f.Current
}
