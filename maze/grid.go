package maze

import (
	"github.com/lixenwraith/pellet-run/core"
)

// Cell tags a grid cell's content
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Dot
	PowerPellet
	Teleporter
	BonusDot
	SafeZone
)

// Grid is the level topology: a fixed-size field of cell tags with any
// teleporter pairings recorded alongside.
type Grid struct {
	Width, Height int
	cells         []Cell

	// TeleporterPairs links teleporter cells; both endpoints carry the
	// Teleporter tag for the lifetime of the level
	TeleporterPairs [][2]core.Point
}

// NewGrid returns a grid filled with walls
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Wall
	}
	return g
}

// InBounds reports whether p lies on the grid
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the cell tag at p; out-of-bounds reads as Wall
func (g *Grid) At(p core.Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.Width+p.X]
}

// Set writes the cell tag at p; out-of-bounds writes are dropped
func (g *Grid) Set(p core.Point, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.Width+p.X] = c
}

// IsWall reports whether p is blocked
func (g *Grid) IsWall(p core.Point) bool {
	return g.At(p) == Wall
}

// OpenNeighbors returns the cardinally adjacent non-wall cells of p
func (g *Grid) OpenNeighbors(p core.Point) []core.Point {
	out := make([]core.Point, 0, 4)
	for _, d := range core.Cardinals {
		n := p.Add(d)
		if g.InBounds(n) && !g.IsWall(n) {
			out = append(out, n)
		}
	}
	return out
}

// TeleporterExit returns the paired endpoint for a teleporter cell
func (g *Grid) TeleporterExit(p core.Point) (core.Point, bool) {
	for _, pair := range g.TeleporterPairs {
		if pair[0] == p {
			return pair[1], true
		}
		if pair[1] == p {
			return pair[0], true
		}
	}
	return core.Point{}, false
}

// interior reports whether p is strictly inside the border ring
func (g *Grid) interior(p core.Point) bool {
	return p.X > 0 && p.X < g.Width-1 && p.Y > 0 && p.Y < g.Height-1
}
