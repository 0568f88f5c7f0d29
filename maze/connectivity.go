package maze

import (
	"github.com/lixenwraith/pellet-run/core"
)

// repairConnectivity floods from the player spawn and force-opens walls
// separating unreached pockets from the reached region. The single-step
// pass catches almost everything; pockets sealed behind thicker walls get
// a carved tunnel unless they are tiny, which is tolerated. Best-effort:
// never errors, never loops forever.
func repairConnectivity(g *Grid, start core.Point) {
	for pass := 0; pass < 3; pass++ {
		reached := flood(g, start)
		opened := false

		for y := 1; y < g.Height-1; y++ {
			for x := 1; x < g.Width-1; x++ {
				p := core.Point{X: x, Y: y}
				if g.IsWall(p) || reached[y*g.Width+x] {
					continue
				}
				if openAdjacentWall(g, p, reached) {
					opened = true
				}
			}
		}

		if !opened {
			break
		}
	}

	tunnelResidualPockets(g, start)
}

// openAdjacentWall opens one wall next to the unreached cell p when that
// wall touches the reached region on any side
func openAdjacentWall(g *Grid, p core.Point, reached []bool) bool {
	for _, d := range core.Cardinals {
		w := p.Add(d)
		if !g.interior(w) || !g.IsWall(w) {
			continue
		}
		for _, d2 := range core.Cardinals {
			n := w.Add(d2)
			if n == p {
				continue
			}
			if g.InBounds(n) && !g.IsWall(n) && reached[n.Y*g.Width+n.X] {
				g.Set(w, Empty)
				return true
			}
		}
	}
	return false
}

// tunnelResidualPockets carves a shortest wall-piercing tunnel from any
// leftover pocket bigger than two cells to the reached region. Pockets of
// one or two cells are left alone per the tolerance policy.
func tunnelResidualPockets(g *Grid, start core.Point) {
	for iter := 0; iter < 8; iter++ {
		reached := flood(g, start)
		seed, size := largestPocket(g, reached)
		if size <= 2 {
			return
		}
		if !carveTunnel(g, seed, reached) {
			return
		}
	}
}

// largestPocket returns a seed cell of the biggest unreached open region
func largestPocket(g *Grid, reached []bool) (core.Point, int) {
	seen := make([]bool, g.Width*g.Height)
	var bestSeed core.Point
	bestSize := 0

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			idx := y*g.Width + x
			p := core.Point{X: x, Y: y}
			if g.IsWall(p) || reached[idx] || seen[idx] {
				continue
			}
			size := 0
			queue := []core.Point{p}
			seen[idx] = true
			for len(queue) > 0 {
				curr := queue[0]
				queue = queue[1:]
				size++
				for _, d := range core.Cardinals {
					n := curr.Add(d)
					ni := n.Y*g.Width + n.X
					if g.InBounds(n) && !g.IsWall(n) && !seen[ni] && !reached[ni] {
						seen[ni] = true
						queue = append(queue, n)
					}
				}
			}
			if size > bestSize {
				bestSize = size
				bestSeed = p
			}
		}
	}
	return bestSeed, bestSize
}

// carveTunnel BFS-walks from seed through interior walls to the nearest
// reached cell and opens the walls along the way
func carveTunnel(g *Grid, seed core.Point, reached []bool) bool {
	prev := make([]int, g.Width*g.Height)
	for i := range prev {
		prev[i] = -1
	}
	seedIdx := seed.Y*g.Width + seed.X
	prev[seedIdx] = seedIdx
	queue := []core.Point{seed}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if reached[curr.Y*g.Width+curr.X] {
			// Walk back opening wall cells
			idx := curr.Y*g.Width + curr.X
			for prev[idx] != idx {
				p := core.Point{X: idx % g.Width, Y: idx / g.Width}
				if g.IsWall(p) {
					g.Set(p, Empty)
				}
				idx = prev[idx]
			}
			return true
		}

		for _, d := range core.Cardinals {
			n := curr.Add(d)
			if !g.InBounds(n) {
				continue
			}
			// Border walls are never carved
			if g.IsWall(n) && !g.interior(n) {
				continue
			}
			ni := n.Y*g.Width + n.X
			if prev[ni] == -1 {
				prev[ni] = curr.Y*g.Width + curr.X
				queue = append(queue, n)
			}
		}
	}
	return false
}

// flood marks every non-wall cell reachable from start via cardinal steps
func flood(g *Grid, start core.Point) []bool {
	reached := make([]bool, g.Width*g.Height)
	if !g.InBounds(start) || g.IsWall(start) {
		return reached
	}

	queue := []core.Point{start}
	reached[start.Y*g.Width+start.X] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range core.Cardinals {
			n := curr.Add(d)
			if !g.InBounds(n) || g.IsWall(n) {
				continue
			}
			idx := n.Y*g.Width + n.X
			if !reached[idx] {
				reached[idx] = true
				queue = append(queue, n)
			}
		}
	}
	return reached
}

// ReachableRatio reports the fraction of non-wall cells reachable from
// start. Diagnostic helper for generation quality checks.
func ReachableRatio(g *Grid, start core.Point) float64 {
	reached := flood(g, start)
	open, hit := 0, 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsWall(core.Point{X: x, Y: y}) {
				continue
			}
			open++
			if reached[y*g.Width+x] {
				hit++
			}
		}
	}
	if open == 0 {
		return 0
	}
	return float64(hit) / float64(open)
}
