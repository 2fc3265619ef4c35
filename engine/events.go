package engine

import (
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/vmath"
)

// EventType discriminates session notifications
type EventType uint8

const (
	EventNone EventType = iota
	// EventShot is a bullet leaving the ship
	EventShot
	// EventSplit is an asteroid destroyed by a bullet or the debug split, Size is the parent's
	EventSplit
	// EventBulletExpired is a bullet culled by lifetime
	EventBulletExpired
	// EventReset is a session reset
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventShot:
		return "shot"
	case EventSplit:
		return "split"
	case EventBulletExpired:
		return "bullet_expired"
	case EventReset:
		return "reset"
	}
	return "none"
}

// Event is a notification produced during a tick for the host (audio, logs)
type Event struct {
	Type EventType
	Pos  vmath.Vec2
	Size component.AsteroidSize
	// Children is the number of fragments spawned by a split
	Children int
}

// eventQueue buffers events between drains
type eventQueue struct {
	events []Event
}

func (q *eventQueue) push(e Event) {
	q.events = append(q.events, e)
}

// drain returns buffered events and resets the queue, the returned slice is owned by the caller
func (q *eventQueue) drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}
