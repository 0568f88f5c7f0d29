package ai

import (
	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// decideAggressive paths straight for the player's current cell. With no
// route it still takes a direct step toward the player when that cell is
// open, wandering only as a last resort.
func decideAggressive(adv *Adversary, view WorldView) core.Direction {
	if d, ok := pathStep(adv, view, view.PlayerPos()); ok {
		return d
	}
	if d := core.Toward(adv.Pos, view.PlayerPos()); !d.IsZero() && !view.IsWall(adv.Pos.Add(d)) {
		return d
	}
	return decideRandom(adv, view)
}

// decidePatrol alternates on a fixed duty cycle between pursuit and
// walking to a waypoint, re-rolled on arrival
func decidePatrol(adv *Adversary, view WorldView) core.Direction {
	pursuing := (adv.decisions/parameter.PatrolDutyCycle)%2 == 0
	if pursuing {
		return decideAggressive(adv, view)
	}

	if adv.PatrolTarget == nil || *adv.PatrolTarget == adv.Pos {
		if wp, ok := randomOpenCell(view); ok {
			adv.PatrolTarget = &wp
		} else {
			adv.PatrolTarget = nil
		}
	}
	if adv.PatrolTarget != nil {
		if d, ok := pathStep(adv, view, *adv.PatrolTarget); ok {
			return d
		}
		// Waypoint unreachable; drop it and re-roll next act
		adv.PatrolTarget = nil
	}
	return decideRandom(adv, view)
}

// decideAmbush paths to a point extrapolated ahead of the player's
// heading, clamped to grid bounds
func decideAmbush(adv *Adversary, view WorldView) core.Direction {
	target := predictPlayer(adv, view, adv.Prediction)
	if view.IsWall(target) {
		target = view.PlayerPos()
	}
	if d, ok := pathStep(adv, view, target); ok {
		return d
	}
	return decideRandom(adv, view)
}

// decideRandom uniformly picks an open adjacent cell. The only policy
// allowed to return zero: a fully enclosed adversary skips its act.
func decideRandom(adv *Adversary, view WorldView) core.Direction {
	open := make([]core.Direction, 0, 4)
	for _, d := range core.Cardinals {
		if !view.IsWall(adv.Pos.Add(d)) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return core.DirNone
	}
	return open[view.Rand().Intn(len(open))]
}

// decideCoordinator encircles: with probability equal to its cooperation
// coefficient it heads for its ring slot around the player, otherwise it
// plays Aggressive
func decideCoordinator(adv *Adversary, view WorldView) core.Direction {
	if view.Rand().Float64() >= adv.Cooperation {
		return decideAggressive(adv, view)
	}

	w, h := view.GridSize()
	r := parameter.CoordinatorRingRadius
	ring := [8]core.Point{
		{X: r, Y: 0}, {X: -r, Y: 0}, {X: 0, Y: r}, {X: 0, Y: -r},
		{X: r, Y: r}, {X: -r, Y: r}, {X: r, Y: -r}, {X: -r, Y: -r},
	}
	slot := ring[adv.ID%len(ring)]
	player := view.PlayerPos()
	target := core.Point{X: player.X + slot.X, Y: player.Y + slot.Y}.Clamp(w, h)

	if !view.IsWall(target) {
		if d, ok := pathStep(adv, view, target); ok {
			return d
		}
	}
	return decideAggressive(adv, view)
}

// decideTrapper cuts the player off: extrapolates the forward path and
// heads for the farthest open cell on it. Falls back to Ambush when the
// player is stationary or no blocking point is open.
func decideTrapper(adv *Adversary, view WorldView) core.Direction {
	dir := view.PlayerDir()
	if dir.IsZero() {
		return decideAmbush(adv, view)
	}

	player := view.PlayerPos()
	var block core.Point
	found := false
	probe := player
	for i := 0; i < adv.Prediction; i++ {
		probe = probe.Add(dir)
		if view.IsWall(probe) {
			break
		}
		block = probe
		found = true
	}
	if !found {
		return decideAmbush(adv, view)
	}

	if d, ok := pathStep(adv, view, block); ok {
		return d
	}
	return decideAmbush(adv, view)
}
