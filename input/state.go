package input

// Snapshot is the read-only per-tick view of button state
type Snapshot interface {
	// IsDown reports whether b is held this tick
	IsDown(b Button) bool
	// WentDown reports whether b became held this tick
	WentDown(b Button) bool
}

// State tracks current and previous button state across frames
// Frontends Set buttons while polling, hand the State to the simulation, then call Advance
type State struct {
	cur  [ButtonCount]bool
	prev [ButtonCount]bool
}

// Set records whether b is held in the current frame
func (s *State) Set(b Button, down bool) {
	s.cur[b] = down
}

// Press marks b held
func (s *State) Press(b Button) {
	s.cur[b] = true
}

// Release marks b not held
func (s *State) Release(b Button) {
	s.cur[b] = false
}

// Advance latches the current frame as previous, current state carries over
func (s *State) Advance() {
	s.prev = s.cur
}

// Reset clears all held and latched state
func (s *State) Reset() {
	s.cur = [ButtonCount]bool{}
	s.prev = [ButtonCount]bool{}
}

func (s *State) IsDown(b Button) bool {
	return s.cur[b]
}

func (s *State) WentDown(b Button) bool {
	return s.cur[b] && !s.prev[b]
}

// idle never reports anything held
type idle struct{}

func (idle) IsDown(Button) bool   { return false }
func (idle) WentDown(Button) bool { return false }

// Idle is a Snapshot with no buttons held
var Idle Snapshot = idle{}
