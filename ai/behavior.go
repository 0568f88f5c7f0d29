package ai

import (
	"math/rand"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// WorldView is the slice of simulation state the AI reads. The engine's
// World satisfies it; tests provide small fakes.
type WorldView interface {
	PlayerPos() core.Point
	PlayerDir() core.Direction
	GridSize() (w, h int)
	IsWall(p core.Point) bool
	AdversaryPositions() []core.Point
	FindPath(start, end core.Point) ([]core.Point, bool)
	Rand() *rand.Rand
}

// DecideMove produces one unit direction for the adversary's next step.
// Zero direction means the adversary stays put this act, which only
// happens when no adjacent cell is open. Every policy degrades to a
// random open step when pathing fails; an adversary is never left parked
// against a wall by a stale plan.
func DecideMove(adv *Adversary, view WorldView) core.Direction {
	adv.decisions++

	if adv.Scared {
		return decideScared(adv, view)
	}

	// Smart mode decorates the behavior, it is not a seventh kind
	if adv.Smart {
		if d, ok := decideSmart(adv, view); ok {
			return d
		}
	}

	switch adv.Kind {
	case Aggressive:
		return decideAggressive(adv, view)
	case Patrol:
		return decidePatrol(adv, view)
	case Ambush:
		return decideAmbush(adv, view)
	case Random:
		return decideRandom(adv, view)
	case Coordinator:
		return decideCoordinator(adv, view)
	case Trapper:
		return decideTrapper(adv, view)
	default:
		return decideRandom(adv, view)
	}
}

// decideSmart overrides by range band: direct pursuit when close, pathing
// to a predicted player cell at medium range, and defers to the
// underlying behavior beyond that.
func decideSmart(adv *Adversary, view WorldView) (core.Direction, bool) {
	dist := adv.Pos.Manhattan(view.PlayerPos())
	switch {
	case dist <= parameter.SmartCloseRange:
		return decideAggressive(adv, view), true
	case dist <= parameter.SmartMediumRange:
		target := predictPlayer(adv, view, adv.Prediction)
		if d, ok := pathStep(adv, view, target); ok {
			return d, true
		}
		return decideAggressive(adv, view), true
	default:
		return core.DirNone, false
	}
}

// decideScared flees: among open neighbors, maximize distance from the
// player combined with separation from the nearest peer.
func decideScared(adv *Adversary, view WorldView) core.Direction {
	player := view.PlayerPos()
	peers := view.AdversaryPositions()

	best := core.DirNone
	bestScore := -1 << 30
	for _, d := range core.Cardinals {
		n := adv.Pos.Add(d)
		if view.IsWall(n) {
			continue
		}
		score := 2 * n.Manhattan(player)

		nearestPeer := 1 << 30
		for _, p := range peers {
			if p == adv.Pos {
				continue
			}
			if sep := n.Manhattan(p); sep < nearestPeer {
				nearestPeer = sep
			}
		}
		if nearestPeer < 1<<30 {
			score += nearestPeer
		}

		if score > bestScore {
			bestScore = score
			best = d
		}
	}
	return best
}

// pathStep plans a route to target and returns the first step. ok is
// false when the route is missing or already complete.
func pathStep(adv *Adversary, view WorldView, target core.Point) (core.Direction, bool) {
	path, ok := view.FindPath(adv.Pos, target)
	if !ok || len(path) == 0 {
		return core.DirNone, false
	}
	d := core.Delta(adv.Pos, path[0])
	if d.IsZero() || view.IsWall(adv.Pos.Add(d)) {
		return core.DirNone, false
	}
	return d, true
}

// predictPlayer extrapolates the player ahead along its heading, clamped
// to grid bounds; a stationary player predicts in place
func predictPlayer(adv *Adversary, view WorldView, lookahead int) core.Point {
	w, h := view.GridSize()
	dir := view.PlayerDir()
	target := view.PlayerPos().Add(dir.Scale(lookahead))
	return target.Clamp(w, h)
}

// randomOpenCell samples an interior non-wall cell as a patrol waypoint
func randomOpenCell(view WorldView) (core.Point, bool) {
	w, h := view.GridSize()
	rng := view.Rand()
	for i := 0; i < 50; i++ {
		p := core.Point{X: 1 + rng.Intn(w-2), Y: 1 + rng.Intn(h-2)}
		if !view.IsWall(p) {
			return p, true
		}
	}
	return core.Point{}, false
}
