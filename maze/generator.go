package maze

import (
	"math/rand"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// Level is the output of generation: topology plus spawn anchors and the
// dot count the simulation must collect to finish the level.
type Level struct {
	Grid           *Grid
	PlayerSpawn    core.Point
	AdversarySpawn core.Point
	TotalDots      int
}

// Theme selects a layout strategy by level tier
type Theme uint8

const (
	ThemeChambers Theme = iota
	ThemeFortress
	ThemeLabyrinth
	ThemeCaverns
	ThemeSpiral
)

// ThemeFor buckets a level into one of the rotating layout strategies
func ThemeFor(level int) Theme {
	if level < 1 {
		level = 1
	}
	return Theme(((level - 1) / parameter.ThemeSpan) % parameter.ThemeCount)
}

// Generate builds the topology for a level. It always succeeds: carve
// strategies are best-effort and the connectivity pass repairs pockets.
func Generate(level int, rng *rand.Rand) *Level {
	g := NewGrid(parameter.MazeWidth, parameter.MazeHeight)

	// Open the interior; themes stamp walls back in
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			g.Set(core.Point{X: x, Y: y}, Empty)
		}
	}

	switch ThemeFor(level) {
	case ThemeChambers:
		carveChambers(g, rng, 1, 1, g.Width-2, g.Height-2, complexity(level))
	case ThemeFortress:
		carveFortress(g, rng)
	case ThemeLabyrinth:
		carveLabyrinth(g, rng)
	case ThemeCaverns:
		carveCaverns(g, rng)
	case ThemeSpiral:
		carveSpiral(g, rng)
	}

	scatterWalls(g, rng, level)

	lvl := &Level{
		Grid:           g,
		PlayerSpawn:    core.Point{X: g.Width / 2, Y: g.Height - 2},
		AdversarySpawn: core.Point{X: g.Width - 2, Y: 1},
	}

	addFeatures(g, rng, level)

	clearFootprint(g, lvl.PlayerSpawn)
	clearFootprint(g, lvl.AdversarySpawn)

	repairConnectivity(g, lvl.PlayerSpawn)

	// Footprints again: repair never walls anything, but features may have
	// landed on a spawn before the repair ran
	clearFootprint(g, lvl.PlayerSpawn)
	clearFootprint(g, lvl.AdversarySpawn)

	placePellets(g, rng, level)
	lvl.TotalDots = fillDots(g, lvl.PlayerSpawn, lvl.AdversarySpawn)

	return lvl
}

// complexity scales hole counts and branching with level, capped
func complexity(level int) int {
	c := 1 + level/4
	if c > 4 {
		c = 4
	}
	return c
}

// scatterWalls stamps a few extra interior walls scaled by level
func scatterWalls(g *Grid, rng *rand.Rand, level int) {
	n := parameter.ExtraWallBase + level*parameter.ExtraWallPerLevel
	if n > parameter.ExtraWallCap {
		n = parameter.ExtraWallCap
	}
	for i := 0; i < n; i++ {
		p := core.Point{
			X: 1 + rng.Intn(g.Width-2),
			Y: 1 + rng.Intn(g.Height-2),
		}
		if g.At(p) == Empty {
			g.Set(p, Wall)
		}
	}
}

// clearFootprint force-opens the Chebyshev neighborhood around a spawn
func clearFootprint(g *Grid, center core.Point) {
	r := parameter.SpawnClearRadius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := core.Point{X: center.X + dx, Y: center.Y + dy}
			if g.interior(p) {
				g.Set(p, Empty)
			}
		}
	}
}

// placePellets anchors power pellets near the four corners and scatters a
// level-scaled remainder at random empty cells
func placePellets(g *Grid, rng *rand.Rand, level int) {
	in := parameter.CornerPelletInset
	corners := [4]core.Point{
		{X: in, Y: in},
		{X: g.Width - 1 - in, Y: in},
		{X: in, Y: g.Height - 1 - in},
		{X: g.Width - 1 - in, Y: g.Height - 1 - in},
	}
	for _, p := range corners {
		// Skipped when the anchor is occupied by a wall or feature
		if g.At(p) == Empty {
			g.Set(p, PowerPellet)
		}
	}

	extra := level / parameter.RandomPelletPerLevels
	if extra > parameter.RandomPelletCap {
		extra = parameter.RandomPelletCap
	}
	for i := 0; i < extra; i++ {
		if p, ok := randomEmpty(g, rng); ok {
			g.Set(p, PowerPellet)
		}
	}
}

// fillDots converts remaining empty interior cells to dots, keeping the
// spawn footprints clear, and returns the count
func fillDots(g *Grid, playerSpawn, adversarySpawn core.Point) int {
	count := 0
	r := parameter.SpawnClearRadius
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			p := core.Point{X: x, Y: y}
			if g.At(p) != Empty {
				continue
			}
			if cheb(p, playerSpawn) <= r || cheb(p, adversarySpawn) <= r {
				continue
			}
			g.Set(p, Dot)
			count++
		}
	}
	return count
}

// randomEmpty samples an empty interior cell, giving up after a bounded
// number of draws on crowded grids
func randomEmpty(g *Grid, rng *rand.Rand) (core.Point, bool) {
	for i := 0; i < 100; i++ {
		p := core.Point{
			X: 1 + rng.Intn(g.Width-2),
			Y: 1 + rng.Intn(g.Height-2),
		}
		if g.At(p) == Empty {
			return p, true
		}
	}
	return core.Point{}, false
}

func cheb(a, b core.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
