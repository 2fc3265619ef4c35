package input

import "time"

// HoldTracker turns key-press events into held state for inputs without key-up events
// A button counts as held until window elapses after its most recent press or repeat
type HoldTracker struct {
	window time.Duration
	last   [ButtonCount]time.Time
	seen   [ButtonCount]bool
	state  State

	// One-shot buttons ignore touches closer than guard to the previous one
	oneShot [ButtonCount]bool
	guard   time.Duration
}

// NewHoldTracker creates a tracker with the given hold window
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// SetOneShot marks buttons whose auto-repeat must not count as new presses
// A touch arriving within guard of the previous touch only extends the repeat run
func (h *HoldTracker) SetOneShot(guard time.Duration, buttons ...Button) {
	h.guard = guard
	for _, b := range buttons {
		if b < ButtonCount {
			h.oneShot[b] = true
		}
	}
}

// Touch records a press or auto-repeat of b at now
func (h *HoldTracker) Touch(b Button, now time.Time) {
	if b >= ButtonCount {
		return
	}
	repeat := !h.last[b].IsZero() && now.Sub(h.last[b]) < h.guard
	h.last[b] = now
	if h.oneShot[b] && repeat {
		return
	}
	h.seen[b] = true
}

// Update recomputes held state at now and returns the snapshot for this tick
func (h *HoldTracker) Update(now time.Time) *State {
	for b := Button(0); b < ButtonCount; b++ {
		h.state.Set(b, h.seen[b] && now.Sub(h.last[b]) < h.window)
	}
	return &h.state
}

// Advance latches the current tick as previous
func (h *HoldTracker) Advance() {
	h.state.Advance()
}

// Release forgets b immediately, for one-shot keys that must not linger
func (h *HoldTracker) Release(b Button) {
	if b >= ButtonCount {
		return
	}
	h.seen[b] = false
}
