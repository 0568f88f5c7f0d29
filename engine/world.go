package engine

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pellet-run/ai"
	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/maze"
	"github.com/lixenwraith/pellet-run/navigation"
	"github.com/lixenwraith/pellet-run/parameter"
)

// World owns the whole simulation: the current level topology, the
// player, the adversary roster, the pathfinder and the clocks. It is not
// safe for concurrent use; the frontend drives it from a single loop.
type World struct {
	state  GameState
	player Player

	level  *maze.Level
	roster []*ai.Adversary
	finder *navigation.Finder

	clock     *PausableClock
	scheduler *Scheduler

	// generation increments per level start and invalidates scheduled
	// events that outlive their level
	generation uint64

	rng    *rand.Rand
	log    *logrus.Logger
	events []Event
}

// NewWorld builds a world seeded for reproducible runs and starts level 1
func NewWorld(seed int64, provider TimeProvider, log *logrus.Logger) *World {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	w := &World{
		state:     newGameState(),
		clock:     NewPausableClock(provider),
		scheduler: NewScheduler(),
		rng:       rand.New(rand.NewSource(seed)),
		log:       log,
	}
	w.startLevel(1)
	return w
}

// State returns a copy of the scalar run state
func (w *World) State() GameState {
	return w.state
}

// Player returns the player entity
func (w *World) Player() *Player {
	return &w.player
}

// Grid returns the current level topology
func (w *World) Grid() *maze.Grid {
	return w.level.Grid
}

// Adversaries returns the live roster
func (w *World) Adversaries() []*ai.Adversary {
	return w.roster
}

// Clock returns the game clock
func (w *World) Clock() *PausableClock {
	return w.clock
}

// Steer buffers a player heading request
func (w *World) Steer(d core.Direction) {
	if w.state.Phase != PhasePlaying {
		return
	}
	w.player.Steer(d)
}

// TogglePause flips between playing and paused, freezing game time and
// with it every scheduled effect
func (w *World) TogglePause() {
	switch w.state.Phase {
	case PhasePlaying:
		w.state.Phase = PhasePaused
		w.clock.Pause()
		w.log.WithField("score", w.state.Score).Debug("paused")
	case PhasePaused:
		w.state.Phase = PhasePlaying
		w.clock.Resume()
		w.log.Debug("resumed")
	}
}

// CacheStats reports pathfinder cache hits and misses for diagnostics
func (w *World) CacheStats() (hits, misses uint64) {
	return w.finder.CacheStats()
}

// ai.WorldView implementation. The adversary package reads the
// simulation exclusively through these.

func (w *World) PlayerPos() core.Point {
	return w.player.Pos
}

func (w *World) PlayerDir() core.Direction {
	return w.player.Dir
}

func (w *World) GridSize() (int, int) {
	return w.level.Grid.Width, w.level.Grid.Height
}

func (w *World) IsWall(p core.Point) bool {
	return w.level.Grid.IsWall(p)
}

func (w *World) AdversaryPositions() []core.Point {
	out := make([]core.Point, len(w.roster))
	for i, adv := range w.roster {
		out[i] = adv.Pos
	}
	return out
}

func (w *World) FindPath(start, end core.Point) ([]core.Point, bool) {
	return w.finder.FindPath(start, end)
}

func (w *World) Rand() *rand.Rand {
	return w.rng
}

// scheduleIn defers fire by d of game time, tagged with the current
// level generation
func (w *World) scheduleIn(d time.Duration, fire func()) {
	w.scheduler.Schedule(w.clock.Now().Add(d), w.generation, fire)
}

// scaredDuration is the pellet countdown in ticks for the current level
func (w *World) scaredDuration() int {
	ticks := parameter.ScaredBaseTicks + parameter.ScaredPerLevelTicks*w.state.Level
	if ticks > parameter.ScaredMaxTicks {
		ticks = parameter.ScaredMaxTicks
	}
	return ticks
}
