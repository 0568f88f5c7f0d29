package engine

// Event is a notable simulation occurrence emitted during a tick. The
// frontend drains them once per frame for sound and flash effects; the
// simulation never depends on whether anyone listens.
type Event uint8

const (
	EventNone Event = iota
	EventDotEaten
	EventPelletEaten
	EventBonusEaten
	EventCapture
	EventTeleport
	EventBoost
	EventPlayerDeath
	EventLevelComplete
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventDotEaten:
		return "dot"
	case EventPelletEaten:
		return "pellet"
	case EventBonusEaten:
		return "bonus"
	case EventCapture:
		return "capture"
	case EventTeleport:
		return "teleport"
	case EventBoost:
		return "boost"
	case EventPlayerDeath:
		return "death"
	case EventLevelComplete:
		return "level-complete"
	case EventGameOver:
		return "game-over"
	default:
		return "none"
	}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// ConsumeEvents returns the events accumulated since the last drain and
// clears the queue
func (w *World) ConsumeEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}
