package animation

import "time"

// EventKind enumerates the inputs a machine reacts to.
type EventKind int

const (
	// EventTick is delivered by the Runner when the armed delay elapses.
	EventTick EventKind = iota
	// EventFocus freezes an animation (the search box gained focus).
	EventFocus
	// EventBlur resumes a frozen animation.
	EventBlur
	// EventData carries asynchronously fetched text.
	EventData
)

// String returns the event name for logs.
func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventData:
		return "data"
	default:
		return "unknown"
	}
}

// Event is one input to a machine's transition function.
type Event struct {
	Kind EventKind
	Text string
}

// Tick returns a timer event.
func Tick() Event { return Event{Kind: EventTick} }

// Focus returns a focus event.
func Focus() Event { return Event{Kind: EventFocus} }

// Blur returns a blur event.
func Blur() Event { return Event{Kind: EventBlur} }

// Data returns an event carrying fetched text.
func Data(text string) Event { return Event{Kind: EventData, Text: text} }

// Machine is a pure state machine the Runner can drive.
//
// Transition must not retain or mutate anything outside the returned state.
// NextDelay reports when the next tick is due; false means no tick should be
// armed until some other event arrives.
type Machine[S any] interface {
	Transition(state S, ev Event) S
	NextDelay(state S) (time.Duration, bool)
}
