package maze

import (
	"math/rand"

	"github.com/lixenwraith/pellet-run/core"
	"github.com/lixenwraith/pellet-run/parameter"
)

// addFeatures stamps the level-gated special cells: teleporter pairs every
// 5th level, bonus rooms every 3rd, safe zones every 7th
func addFeatures(g *Grid, rng *rand.Rand, level int) {
	if level%parameter.TeleporterEveryLevels == 0 {
		pairs := 1 + level/15
		for i := 0; i < pairs; i++ {
			addTeleporterPair(g, rng)
		}
	}
	if level%parameter.BonusRoomEveryLevels == 0 {
		addBonusRoom(g, rng)
	}
	if level%parameter.SafeZoneEveryLevels == 0 {
		addSafeZones(g, rng)
	}
}

// addTeleporterPair links two distant empty cells. Both endpoints keep the
// Teleporter tag for the level's lifetime.
func addTeleporterPair(g *Grid, rng *rand.Rand) {
	a, ok := randomEmpty(g, rng)
	if !ok {
		return
	}

	// Prefer a far exit; settle for any empty cell after bounded retries
	var b core.Point
	found := false
	for i := 0; i < 40; i++ {
		c, ok := randomEmpty(g, rng)
		if !ok {
			break
		}
		if c == a {
			continue
		}
		if a.Manhattan(c) >= (g.Width+g.Height)/3 || i >= 20 {
			b = c
			found = true
			break
		}
	}
	if !found {
		return
	}

	g.Set(a, Teleporter)
	g.Set(b, Teleporter)
	g.TeleporterPairs = append(g.TeleporterPairs, [2]core.Point{a, b})
}

// addBonusRoom stamps a small walled room with a single doorway and a
// bonus dot at its center
func addBonusRoom(g *Grid, rng *rand.Rand) {
	size := parameter.BonusRoomSize
	if g.Width < size+4 || g.Height < size+4 {
		return
	}

	x1 := 2 + rng.Intn(g.Width-size-4)
	y1 := 2 + rng.Intn(g.Height-size-4)
	x2 := x1 + size + 1
	y2 := y1 + size + 1

	for x := x1; x <= x2; x++ {
		g.Set(core.Point{X: x, Y: y1}, Wall)
		g.Set(core.Point{X: x, Y: y2}, Wall)
	}
	for y := y1; y <= y2; y++ {
		g.Set(core.Point{X: x1, Y: y}, Wall)
		g.Set(core.Point{X: x2, Y: y}, Wall)
	}

	// Interior cleared so the doorway is never sealed from inside
	for y := y1 + 1; y < y2; y++ {
		for x := x1 + 1; x < x2; x++ {
			g.Set(core.Point{X: x, Y: y}, Empty)
		}
	}

	// One doorway on a random side
	switch rng.Intn(4) {
	case 0:
		g.Set(core.Point{X: x1 + 1 + rng.Intn(size), Y: y1}, Empty)
	case 1:
		g.Set(core.Point{X: x1 + 1 + rng.Intn(size), Y: y2}, Empty)
	case 2:
		g.Set(core.Point{X: x1, Y: y1 + 1 + rng.Intn(size)}, Empty)
	case 3:
		g.Set(core.Point{X: x2, Y: y1 + 1 + rng.Intn(size)}, Empty)
	}

	g.Set(core.Point{X: (x1 + x2) / 2, Y: (y1 + y2) / 2}, BonusDot)
}

// addSafeZones scatters speed-boost cells with a minimum spread
func addSafeZones(g *Grid, rng *rand.Rand) {
	var placed []core.Point
	for i := 0; i < parameter.SafeZoneCount; i++ {
		for attempt := 0; attempt < 30; attempt++ {
			p, ok := randomEmpty(g, rng)
			if !ok {
				return
			}
			tooClose := false
			for _, q := range placed {
				if p.Manhattan(q) < parameter.SafeZoneMinGap {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}
			g.Set(p, SafeZone)
			placed = append(placed, p)
			break
		}
	}
}
