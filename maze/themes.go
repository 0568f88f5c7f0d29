package maze

import (
	"math/rand"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// carveChambers recursively divides the region [x1,x2]x[y1,y2] (inclusive,
// already open) with a wall line, punching holeCount openings through it.
// Base case: stop below the minimum splittable span.
func carveChambers(g *Grid, rng *rand.Rand, x1, y1, x2, y2, holeCount int) {
	w := x2 - x1 + 1
	h := y2 - y1 + 1
	if w < parameter.MinChamberSpan || h < parameter.MinChamberSpan {
		return
	}

	// Split across the longer axis; coin flip when square-ish
	vertical := w > h
	if w == h {
		vertical = rng.Intn(2) == 0
	}

	if vertical {
		// Wall at column wx, leaving at least one cell on each side
		wx := x1 + 1 + rng.Intn(w-2)
		for y := y1; y <= y2; y++ {
			g.Set(core.Point{X: wx, Y: y}, Wall)
		}
		punchHoles(g, rng, wx, y1, wx, y2, holeCount)
		carveChambers(g, rng, x1, y1, wx-1, y2, holeCount)
		carveChambers(g, rng, wx+1, y1, x2, y2, holeCount)
	} else {
		wy := y1 + 1 + rng.Intn(h-2)
		for x := x1; x <= x2; x++ {
			g.Set(core.Point{X: x, Y: wy}, Wall)
		}
		punchHoles(g, rng, x1, wy, x2, wy, holeCount)
		carveChambers(g, rng, x1, y1, x2, wy-1, holeCount)
		carveChambers(g, rng, x1, wy+1, x2, y2, holeCount)
	}
}

// punchHoles opens n cells along the wall segment from (x1,y1) to (x2,y2).
// Always carves at least one opening, otherwise the segment would seal off
// half the chamber.
func punchHoles(g *Grid, rng *rand.Rand, x1, y1, x2, y2, n int) {
	if n < 1 {
		n = 1
	}
	length := (x2 - x1) + (y2 - y1) + 1
	if length < 1 {
		return
	}
	for i := 0; i < n; i++ {
		off := rng.Intn(length)
		p := core.Point{X: x1, Y: y1}
		if x2 > x1 {
			p.X += off
		} else {
			p.Y += off
		}
		g.Set(p, Empty)
	}
}

// carveFortress stamps concentric rectangular walls with randomized gates
func carveFortress(g *Grid, rng *rand.Rand) {
	for inset := 2; inset < g.Width/2 && inset < g.Height/2; inset += 2 {
		x1, y1 := inset, inset
		x2, y2 := g.Width-1-inset, g.Height-1-inset
		if x2-x1 < 2 || y2-y1 < 2 {
			break
		}

		for x := x1; x <= x2; x++ {
			g.Set(core.Point{X: x, Y: y1}, Wall)
			g.Set(core.Point{X: x, Y: y2}, Wall)
		}
		for y := y1; y <= y2; y++ {
			g.Set(core.Point{X: x1, Y: y}, Wall)
			g.Set(core.Point{X: x2, Y: y}, Wall)
		}

		// One gate per side at a random position
		g.Set(core.Point{X: x1 + 1 + rng.Intn(x2-x1-1), Y: y1}, Empty)
		g.Set(core.Point{X: x1 + 1 + rng.Intn(x2-x1-1), Y: y2}, Empty)
		g.Set(core.Point{X: x1, Y: y1 + 1 + rng.Intn(y2-y1-1)}, Empty)
		g.Set(core.Point{X: x2, Y: y1 + 1 + rng.Intn(y2-y1-1)}, Empty)
	}
}

// carveLabyrinth stamps grid-aligned wall columns and rows with
// probabilistic branch gaps; every run keeps at least one guaranteed gap
func carveLabyrinth(g *Grid, rng *rand.Rand) {
	for x := 2; x < g.Width-2; x += 3 {
		gap := 1 + rng.Intn(g.Height-2)
		for y := 1; y < g.Height-1; y++ {
			if y == gap || rng.Float64() < 0.25 {
				continue
			}
			g.Set(core.Point{X: x, Y: y}, Wall)
		}
	}
	for y := 2; y < g.Height-2; y += 3 {
		gap := 1 + rng.Intn(g.Width-2)
		for x := 1; x < g.Width-1; x++ {
			if x == gap || rng.Float64() < 0.35 {
				continue
			}
			g.Set(core.Point{X: x, Y: y}, Wall)
		}
	}
}

// carveCaverns places bordered chambers at random positions and links
// consecutive chamber centers with L-shaped corridors
func carveCaverns(g *Grid, rng *rand.Rand) {
	type rect struct{ x1, y1, x2, y2 int }

	count := 4 + rng.Intn(3)
	var rooms []rect
	for i := 0; i < count; i++ {
		rw := 4 + rng.Intn(4)
		rh := 3 + rng.Intn(3)
		if rw >= g.Width-2 || rh >= g.Height-2 {
			continue
		}
		x1 := 1 + rng.Intn(g.Width-1-rw)
		y1 := 1 + rng.Intn(g.Height-1-rh)
		r := rect{x1, y1, x1 + rw - 1, y1 + rh - 1}

		for x := r.x1; x <= r.x2; x++ {
			g.Set(core.Point{X: x, Y: r.y1}, Wall)
			g.Set(core.Point{X: x, Y: r.y2}, Wall)
		}
		for y := r.y1; y <= r.y2; y++ {
			g.Set(core.Point{X: r.x1, Y: y}, Wall)
			g.Set(core.Point{X: r.x2, Y: y}, Wall)
		}
		rooms = append(rooms, r)
	}

	// L corridors between consecutive centers carve straight through
	// whatever chamber walls they cross
	for i := 1; i < len(rooms); i++ {
		ax := (rooms[i-1].x1 + rooms[i-1].x2) / 2
		ay := (rooms[i-1].y1 + rooms[i-1].y2) / 2
		bx := (rooms[i].x1 + rooms[i].x2) / 2
		by := (rooms[i].y1 + rooms[i].y2) / 2

		if rng.Intn(2) == 0 {
			carveH(g, ax, bx, ay)
			carveV(g, ay, by, bx)
		} else {
			carveV(g, ay, by, ax)
			carveH(g, ax, bx, by)
		}
	}
}

// carveSpiral stamps a radius-bounded spiral wall out from the center,
// leaving one gap per segment
func carveSpiral(g *Grid, rng *rand.Rand) {
	cx, cy := g.Width/2, g.Height/2
	maxR := g.Width / 2
	if g.Height/2 < maxR {
		maxR = g.Height / 2
	}
	maxR -= 2

	dirs := [4]core.Direction{core.DirRight, core.DirDown, core.DirLeft, core.DirUp}
	p := core.Point{X: cx, Y: cy}
	segLen := 2
	di := 0

	for segLen/2 <= maxR {
		gap := rng.Intn(segLen)
		for i := 0; i < segLen; i++ {
			p = p.Add(dirs[di])
			if !g.interior(p) {
				return
			}
			if i != gap {
				g.Set(p, Wall)
			}
		}
		di = (di + 1) % 4
		// Spiral arm lengths grow every other turn
		if di%2 == 0 {
			segLen += 2
		}
	}
}

func carveH(g *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		p := core.Point{X: x, Y: y}
		if g.interior(p) {
			g.Set(p, Empty)
		}
	}
}

func carveV(g *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		p := core.Point{X: x, Y: y}
		if g.interior(p) {
			g.Set(p, Empty)
		}
	}
}
