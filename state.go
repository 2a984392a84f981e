package pong

import "strings"

// Phase is the rally state derived from the idle timer.
type Phase int

const (
	// PhaseServing: the ball rests at the center until the serve delay ends.
	PhaseServing Phase = iota
	// PhaseInPlay: the ball moves every tick.
	PhaseInPlay
)

func (p Phase) String() string {
	switch p {
	case PhaseServing:
		return "serving"
	case PhaseInPlay:
		return "in-play"
	default:
		return "unknown"
	}
}

// Event is a set of things that happened during one tick.
type Event uint8

const (
	EventWallBounce Event = 1 << iota // ball reflected off the top or bottom edge
	EventPlayerHit                    // ball reflected off the human paddle
	EventAIHit                        // ball reflected off the AI paddle
	EventOut                          // ball left through the left or right edge
	EventReset                        // geometry restored and a new serve picked
	EventServe                        // ball started moving after the serve delay
	EventNone Event = 0
)

var eventNames = []struct {
	ev   Event
	name string
}{
	{EventWallBounce, "wall"},
	{EventPlayerHit, "player-hit"},
	{EventAIHit, "ai-hit"},
	{EventOut, "out"},
	{EventReset, "reset"},
	{EventServe, "serve"},
}

// Has reports whether all bits of other are set.
func (e Event) Has(other Event) bool {
	return e&other == other
}

func (e Event) String() string {
	if e == EventNone {
		return "none"
	}
	var parts []string
	for _, n := range eventNames {
		if e.Has(n.ev) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
