package maze

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// TestBorderAlwaysWall verifies the outer ring is never opened by any theme
func TestBorderAlwaysWall(t *testing.T) {
	for level := 1; level <= 15; level++ {
		lvl := Generate(level, rand.New(rand.NewSource(int64(level))))
		g := lvl.Grid
		for x := 0; x < g.Width; x++ {
			if !g.IsWall(core.Point{X: x, Y: 0}) || !g.IsWall(core.Point{X: x, Y: g.Height - 1}) {
				t.Fatalf("level %d: border opened at column %d", level, x)
			}
		}
		for y := 0; y < g.Height; y++ {
			if !g.IsWall(core.Point{X: 0, Y: y}) || !g.IsWall(core.Point{X: g.Width - 1, Y: y}) {
				t.Fatalf("level %d: border opened at row %d", level, y)
			}
		}
	}
}

// TestReachableRatio verifies the connectivity repair keeps nearly every
// open cell reachable from the player spawn, across all themes and many
// seeds. Residual unreachable singletons are tolerated, hence a ratio
// threshold instead of exact full connectivity.
func TestReachableRatio(t *testing.T) {
	const seeds = 40
	for level := 1; level <= parameter.ThemeSpan*parameter.ThemeCount; level++ {
		for seed := int64(0); seed < seeds; seed++ {
			lvl := Generate(level, rand.New(rand.NewSource(seed*1000+int64(level))))
			ratio := ReachableRatio(lvl.Grid, lvl.PlayerSpawn)
			if ratio < 0.98 {
				t.Errorf("level %d seed %d: reachable ratio %.3f below 0.98", level, seed, ratio)
			}
		}
	}
}

// TestTotalDotsMatchesGrid verifies the reported count equals the tags
func TestTotalDotsMatchesGrid(t *testing.T) {
	for level := 1; level <= 10; level++ {
		lvl := Generate(level, rand.New(rand.NewSource(int64(level)*7)))
		g := lvl.Grid
		count := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.At(core.Point{X: x, Y: y}) == Dot {
					count++
				}
			}
		}
		if count != lvl.TotalDots {
			t.Errorf("level %d: TotalDots %d but grid has %d dots", level, lvl.TotalDots, count)
		}
		if count == 0 {
			t.Errorf("level %d: generated maze has no dots", level)
		}
	}
}

// TestSpawnFootprintsOpen verifies both spawns sit on open cells with a
// cleared neighborhood
func TestSpawnFootprintsOpen(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		lvl := Generate(1, rand.New(rand.NewSource(seed)))
		g := lvl.Grid
		for _, spawn := range []core.Point{lvl.PlayerSpawn, lvl.AdversarySpawn} {
			if g.IsWall(spawn) {
				t.Fatalf("seed %d: spawn %v is a wall", seed, spawn)
			}
			if len(g.OpenNeighbors(spawn)) == 0 {
				t.Fatalf("seed %d: spawn %v fully enclosed", seed, spawn)
			}
		}
	}
}

// TestTeleporterPairsOnScheduledLevels verifies every 5th level records
// linked pairs whose endpoints both carry the tag
func TestTeleporterPairsOnScheduledLevels(t *testing.T) {
	lvl := Generate(5, rand.New(rand.NewSource(42)))
	g := lvl.Grid
	if len(g.TeleporterPairs) == 0 {
		t.Fatal("level 5: expected at least one teleporter pair")
	}
	for _, pair := range g.TeleporterPairs {
		for _, p := range pair {
			if g.At(p) != Teleporter {
				t.Errorf("pair endpoint %v lost its teleporter tag (got %d)", p, g.At(p))
			}
		}
		exit, ok := g.TeleporterExit(pair[0])
		if !ok || exit != pair[1] {
			t.Errorf("TeleporterExit(%v) = %v, %v; want %v", pair[0], exit, ok, pair[1])
		}
	}
}

// TestBonusDotOnScheduledLevels verifies every 3rd level stamps a bonus dot
func TestBonusDotOnScheduledLevels(t *testing.T) {
	lvl := Generate(3, rand.New(rand.NewSource(7)))
	g := lvl.Grid
	found := false
	for y := 0; y < g.Height && !found; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(core.Point{X: x, Y: y}) == BonusDot {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("level 3: expected a bonus dot")
	}
}

// TestThemeRotation verifies the level-to-theme bucketing
func TestThemeRotation(t *testing.T) {
	cases := []struct {
		level int
		want  Theme
	}{
		{1, ThemeChambers},
		{3, ThemeChambers},
		{4, ThemeFortress},
		{7, ThemeLabyrinth},
		{10, ThemeCaverns},
		{13, ThemeSpiral},
		{16, ThemeChambers},
	}
	for _, c := range cases {
		if got := ThemeFor(c.level); got != c.want {
			t.Errorf("ThemeFor(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

// TestChamberDivisionTerminates verifies the base case stops recursion on
// sub-minimum regions instead of hanging or panicking
func TestChamberDivisionTerminates(t *testing.T) {
	g := NewGrid(8, 8)
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			g.Set(core.Point{X: x, Y: y}, Empty)
		}
	}
	// Region narrower than MinChamberSpan on both axes
	carveChambers(g, rand.New(rand.NewSource(1)), 1, 1, 3, 3, 2)
}

// TestGridOutOfBounds verifies out-of-bounds access is wall-safe
func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if g.At(core.Point{X: -1, Y: 2}) != Wall {
		t.Error("out-of-bounds read should report Wall")
	}
	g.Set(core.Point{X: 99, Y: 99}, Empty) // must not panic
}
