package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pellet-run/ai"
	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/maze"
	"github.com/lixenwraith/pellet-run/parameter"
)

// Tick advances the simulation one fixed step. The order is deliberate:
// scheduled effects, player motion and cell effects, adversary motion
// with collision checks after every individual move, then the shared
// scared countdown.
func (w *World) Tick() {
	if w.state.Phase != PhasePlaying {
		return
	}

	w.scheduler.RunDue(w.clock.Now(), w.generation)

	w.tickPlayer()
	if w.state.Phase != PhasePlaying {
		return
	}

	w.tickAdversaries()
	if w.state.Phase != PhasePlaying {
		return
	}

	if w.state.PowerTicks > 0 {
		w.state.PowerTicks--
		if w.state.PowerTicks == 0 {
			// Synchronous expiry: the whole roster turns at once
			for _, adv := range w.roster {
				adv.Scared = false
			}
		}
	}
}

// tickPlayer accumulates the move timer and steps the player when the
// speed threshold is reached
func (w *World) tickPlayer() {
	w.player.MoveTimer++
	if w.player.MoveTimer < w.state.PlayerSpeed() {
		return
	}
	w.player.MoveTimer = 0

	// A buffered turn wins if its cell is open, else keep the heading
	if !w.player.Pending.IsZero() && !w.IsWall(w.player.Pos.Add(w.player.Pending)) {
		w.player.Dir = w.player.Pending
		w.player.Pending = core.DirNone
	}
	if w.player.Dir.IsZero() {
		return
	}

	next := w.player.Pos.Add(w.player.Dir)
	if w.IsWall(next) {
		// Walls stop the player; the heading stays for when it opens
		return
	}
	w.player.Pos = next

	w.applyCellEffect(next)
	if w.state.Phase != PhasePlaying {
		return
	}
	w.checkCollisions()
}

// applyCellEffect consumes whatever the player landed on
func (w *World) applyCellEffect(p core.Point) {
	g := w.level.Grid
	switch g.At(p) {
	case maze.Dot:
		g.Set(p, maze.Empty)
		bonus := w.state.registerCollection(w.clock.Now())
		w.state.Score += parameter.DotScore*w.state.Multiplier + bonus
		w.state.DotsCollected++
		w.emit(EventDotEaten)
		if w.state.DotsCollected >= w.state.TotalDots {
			w.completeLevel()
		}

	case maze.PowerPellet:
		g.Set(p, maze.Empty)
		bonus := w.state.registerCollection(w.clock.Now())
		w.state.Score += parameter.PelletScore*w.state.Multiplier + bonus
		w.state.PowerTicks = w.scaredDuration()
		for _, adv := range w.roster {
			adv.Scared = true
		}
		w.emit(EventPelletEaten)

	case maze.BonusDot:
		g.Set(p, maze.Empty)
		bonus := w.state.registerCollection(w.clock.Now())
		w.state.Score += parameter.BonusScore*w.state.Multiplier + bonus
		w.state.Lives++
		w.emit(EventBonusEaten)

	case maze.Teleporter:
		if exit, ok := g.TeleporterExit(p); ok {
			w.player.Pos = exit
			w.emit(EventTeleport)
		}

	case maze.SafeZone:
		if !w.state.Boosted {
			w.state.Boosted = true
			w.state.boostSeq++
			seq := w.state.boostSeq
			w.scheduleIn(parameter.SafeZoneBoostDuration, func() {
				// Only the boost that armed this revert may be ended by
				// it; a death can have ended that boost already
				if w.state.boostSeq == seq {
					w.state.Boosted = false
				}
			})
			w.emit(EventBoost)
		}
	}
}

// tickAdversaries steps each adversary on its own timer. Scared
// adversaries carry an extra delay on top of the base threshold.
func (w *World) tickAdversaries() {
	for _, adv := range w.roster {
		threshold := parameter.AdversaryBaseSpeed
		if adv.Scared {
			threshold += parameter.AdversaryScaredDelay
		}

		adv.MoveTimer++
		if adv.MoveTimer < threshold {
			continue
		}
		adv.MoveTimer = 0

		if d := ai.DecideMove(adv, w); !d.IsZero() {
			adv.Pos = adv.Pos.Add(d)
		}

		w.checkCollisions()
		if w.state.Phase != PhasePlaying {
			return
		}
	}
}

// checkCollisions resolves player and adversary sharing a cell
func (w *World) checkCollisions() {
	for _, adv := range w.roster {
		if adv.Pos != w.player.Pos {
			continue
		}
		if adv.Scared {
			w.captureAdversary(adv)
		} else {
			w.killPlayer(adv)
			return
		}
	}
}

// captureAdversary scores a scared adversary and sends it home
func (w *World) captureAdversary(adv *ai.Adversary) {
	score := (parameter.CaptureBaseScore + parameter.CapturePerLevel*w.state.Level) * w.state.Multiplier
	w.state.Score += score
	adv.Respawn()
	w.emit(EventCapture)
	w.log.WithFields(logrus.Fields{
		"adversary": adv.ID,
		"kind":      adv.Kind,
		"score":     score,
	}).Debug("adversary captured")
}

// killPlayer costs a life and resets positions, or ends the run
func (w *World) killPlayer(adv *ai.Adversary) {
	w.state.Lives--
	w.state.breakCombo()
	w.state.Boosted = false
	w.emit(EventPlayerDeath)
	w.log.WithFields(logrus.Fields{
		"adversary": adv.ID,
		"kind":      adv.Kind,
		"lives":     w.state.Lives,
	}).Info("player caught")

	if w.state.Lives <= 0 {
		w.state.Phase = PhaseGameOver
		w.clock.Pause()
		w.emit(EventGameOver)
		w.log.WithField("score", w.state.Score).Info("game over")
		return
	}

	w.player.resetAt(w.level.PlayerSpawn)
	for _, a := range w.roster {
		a.Respawn()
	}
}
