package engine

import "github.com/lixenwraith/pellet-run/core"

// Player is the user-controlled entity. Direction changes are buffered:
// the requested heading is adopted at the next step where it is legal,
// so a turn pressed a little early still takes the corner.
type Player struct {
	Pos core.Point
	Dir core.Direction

	// Pending is the buffered heading request, zero when none
	Pending core.Direction

	// MoveTimer accumulates ticks toward the speed threshold
	MoveTimer int
}

// Steer buffers a heading request
func (p *Player) Steer(d core.Direction) {
	p.Pending = d
}

// resetAt parks the player at a spawn point, cleared of motion
func (p *Player) resetAt(spawn core.Point) {
	p.Pos = spawn
	p.Dir = core.DirNone
	p.Pending = core.DirNone
	p.MoveTimer = 0
}
