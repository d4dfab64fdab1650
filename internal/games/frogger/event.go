package frogger

import "fmt"

// EventKind tags the variant held by an Event.
type EventKind int

const (
	EventBegin EventKind = iota
	EventMove
	EventAdvance
)

// Event is one input to the reducer: the begin signal, a hop request, or
// an advance tick for a single hazard.
type Event struct {
	Kind     EventKind
	Move     Move   // EventMove only
	HazardID string // EventAdvance only
}

// BeginEvent returns the start-of-game signal.
func BeginEvent() Event {
	return Event{Kind: EventBegin}
}

// MoveEvent returns a hop request.
func MoveEvent(m Move) Event {
	return Event{Kind: EventMove, Move: m}
}

// AdvanceEvent returns an advance tick for the hazard named id.
func AdvanceEvent(id string) Event {
	return Event{Kind: EventAdvance, HazardID: id}
}

func (e Event) String() string {
	switch e.Kind {
	case EventBegin:
		return "begin"
	case EventMove:
		return "move " + e.Move.String()
	case EventAdvance:
		return "advance " + e.HazardID
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}
