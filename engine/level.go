package engine

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pellet-run/ai"
	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/maze"
	"github.com/lixenwraith/pellet-run/navigation"
	"github.com/lixenwraith/pellet-run/parameter"
)

// startLevel generates the level, rebuilds the roster and pathfinder,
// and bumps the generation so pending scheduled effects from the old
// level die unfired.
func (w *World) startLevel(level int) {
	w.generation++
	w.scheduler.Clear()

	w.level = maze.Generate(level, w.rng)
	w.roster = ai.NewRoster(level, w.level.AdversarySpawn, w.rng)

	g := w.level.Grid
	w.finder = navigation.NewFinder(
		g.Width, g.Height,
		func(x, y int) bool { return g.IsWall(core.Point{X: x, Y: y}) },
		parameter.PathCacheCapacity,
		parameter.PathCacheTTL,
		func() time.Time { return w.clock.Now() },
	)

	w.state.Level = level
	w.state.DotsCollected = 0
	w.state.TotalDots = w.level.TotalDots
	w.state.PowerTicks = 0
	w.state.Boosted = false
	w.state.breakCombo()

	w.player.resetAt(w.level.PlayerSpawn)

	w.log.WithFields(logrus.Fields{
		"level":       level,
		"theme":       maze.ThemeFor(level),
		"dots":        w.level.TotalDots,
		"adversaries": len(w.roster),
	}).Info("level started")
}

// completeLevel freezes the run for the upgrade screen
func (w *World) completeLevel() {
	w.state.Phase = PhaseUpgrading
	w.clock.Pause()
	w.emit(EventLevelComplete)
	w.log.WithFields(logrus.Fields{
		"level": w.state.Level,
		"score": w.state.Score,
	}).Info("level complete")
}

// AdvanceLevel leaves the upgrade screen and starts the next level
func (w *World) AdvanceLevel() {
	if w.state.Phase != PhaseUpgrading {
		return
	}
	w.startLevel(w.state.Level + 1)
	w.state.Phase = PhasePlaying
	w.clock.Resume()
}
