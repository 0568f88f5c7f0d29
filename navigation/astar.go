package navigation

import (
	"time"

	"github.com/lixenwraith/pellet-run/core"
)

// WallChecker reports whether the cell at (x, y) is blocked
type WallChecker func(x, y int) bool

const (
	costCardinal    = 10
	costUnreachable = 1<<30 - 1
)

// --- Min-heap keyed on f-score ---

type heapEntry struct {
	idx int // Flat grid index (y*width + x)
	f   int // g + heuristic
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].f <= (*h)[i].f {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].f < (*h)[left].f {
			smallest = right
		}
		if (*h)[i].f <= (*h)[smallest].f {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// Finder answers shortest-path queries over a fixed-size grid, memoizing
// results in a TTL'd cache. One Finder serves one level; ClearCache is
// called when the topology changes.
type Finder struct {
	width, height int
	isBlocked     WallChecker
	cache         *PathCache
	now           func() time.Time
}

// NewFinder creates a pathfinder over a width×height grid.
// now supplies game time for cache expiry.
func NewFinder(width, height int, isBlocked WallChecker, cacheCapacity int, cacheTTL time.Duration, now func() time.Time) *Finder {
	return &Finder{
		width:     width,
		height:    height,
		isBlocked: isBlocked,
		cache:     NewPathCache(cacheCapacity, cacheTTL),
		now:       now,
	}
}

// FindPath returns the cell sequence from start to end, exclusive of
// start, or (nil, false) when no route exists. "No path" is a normal
// outcome, not an error: callers fall back to simpler movement.
//
// Immediate-return rules bypass both search and cache: identical
// endpoints yield an empty path, a blocked destination yields no path.
func (f *Finder) FindPath(start, end core.Point) ([]core.Point, bool) {
	if start == end {
		return []core.Point{}, true
	}
	if f.isBlocked(end.X, end.Y) || f.isBlocked(start.X, start.Y) {
		return nil, false
	}
	if start.X < 0 || start.X >= f.width || start.Y < 0 || start.Y >= f.height {
		return nil, false
	}
	if end.X < 0 || end.X >= f.width || end.Y < 0 || end.Y >= f.height {
		return nil, false
	}

	now := f.now()
	if path, reachable, found := f.cache.Lookup(start, end, now); found {
		return path, reachable
	}

	path, ok := f.search(start, end)
	f.cache.Insert(start, end, path, ok, now)
	return path, ok
}

// ClearCache drops all memoized routes; called on level regeneration
func (f *Finder) ClearCache() {
	f.cache.Clear()
}

// CacheStats reports cumulative cache hits and misses
func (f *Finder) CacheStats() (hits, misses uint64) {
	return f.cache.Hits(), f.cache.Misses()
}

// search runs 4-directional A*. The heuristic is Manhattan distance plus
// a small axis-imbalance penalty that breaks ties toward cells roughly
// equidistant on both axes; slightly inadmissible, which is acceptable
// for game AI and not a shortest-path guarantee.
func (f *Finder) search(start, end core.Point) ([]core.Point, bool) {
	size := f.width * f.height
	gScore := make([]int, size)
	for i := range gScore {
		gScore[i] = costUnreachable
	}
	prev := make([]int, size)
	for i := range prev {
		prev[i] = -1
	}

	startIdx := start.Y*f.width + start.X
	endIdx := end.Y*f.width + end.X
	gScore[startIdx] = 0

	h := make(minHeap, 0, size/8)
	h.push(heapEntry{idx: startIdx, f: f.heuristic(start, end)})

	for len(h) > 0 {
		e := h.pop()
		if e.idx == endIdx {
			return reconstruct(prev, f.width, startIdx, endIdx), true
		}

		cx := e.idx % f.width
		cy := e.idx / f.width
		g := gScore[e.idx]

		for _, d := range core.Cardinals {
			nx, ny := cx+d.DX, cy+d.DY
			if nx < 0 || nx >= f.width || ny < 0 || ny >= f.height {
				continue
			}
			if f.isBlocked(nx, ny) {
				continue
			}
			ni := ny*f.width + nx
			ng := g + costCardinal
			if ng < gScore[ni] {
				gScore[ni] = ng
				prev[ni] = e.idx
				h.push(heapEntry{idx: ni, f: ng + f.heuristic(core.Point{X: nx, Y: ny}, end)})
			}
		}
	}

	// Open set exhausted without reaching end
	return nil, false
}

func (f *Finder) heuristic(p, end core.Point) int {
	dx := p.X - end.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - end.Y
	if dy < 0 {
		dy = -dy
	}
	imbalance := dx - dy
	if imbalance < 0 {
		imbalance = -imbalance
	}
	return costCardinal*(dx+dy) + imbalance
}

// reconstruct walks prev links back from end, exclusive of start
func reconstruct(prev []int, width, startIdx, endIdx int) []core.Point {
	var rev []core.Point
	idx := endIdx
	for idx != startIdx && idx != -1 {
		rev = append(rev, core.Point{X: idx % width, Y: idx / width})
		idx = prev[idx]
	}
	// Reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
