package engine

import "time"

// scheduledEvent is a deferred effect stamped with the level generation
// it belongs to. Due times are game time, so pending effects freeze with
// the pausable clock.
type scheduledEvent struct {
	due        time.Time
	generation uint64
	fire       func()
}

// Scheduler holds deferred effects keyed by game-time due stamps. Events
// scheduled during one level are discarded unfired if the level has
// changed by the time they come due.
type Scheduler struct {
	pending []scheduledEvent
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule defers fire until due, tagged with the current generation
func (s *Scheduler) Schedule(due time.Time, generation uint64, fire func()) {
	s.pending = append(s.pending, scheduledEvent{
		due:        due,
		generation: generation,
		fire:       fire,
	})
}

// RunDue fires every due event whose generation matches and drops due
// events from stale generations. Not-yet-due events are kept regardless
// of generation; they will be discarded when their time comes. A fire
// callback may schedule new events; they are kept for a later pass.
func (s *Scheduler) RunDue(now time.Time, generation uint64) int {
	pending := s.pending
	s.pending = nil

	fired := 0
	var kept []scheduledEvent
	for _, ev := range pending {
		if ev.due.After(now) {
			kept = append(kept, ev)
			continue
		}
		if ev.generation == generation {
			ev.fire()
			fired++
		}
	}
	s.pending = append(kept, s.pending...)
	return fired
}

// Clear drops all pending events
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Len returns the number of pending events
func (s *Scheduler) Len() int {
	return len(s.pending)
}
