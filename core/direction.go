package core

// Direction is a unit step vector: one of the four cardinals or zero
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{0, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// Cardinals in N, S, W, E order
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// IsZero reports whether d is the zero direction
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

// Scale returns the vector d stretched by n steps
func (d Direction) Scale(n int) Direction {
	return Direction{d.DX * n, d.DY * n}
}

// Toward returns the cardinal direction whose single step from a reduces
// the dominant-axis distance to b. Zero if a == b.
func Toward(a, b Point) Direction {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return DirNone
	}
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if adx >= ady {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// Delta returns the direction of a single step from a to b, or zero if the
// points are not cardinally adjacent.
func Delta(a, b Point) Direction {
	d := Direction{b.X - a.X, b.Y - a.Y}
	for _, c := range Cardinals {
		if d == c {
			return c
		}
	}
	return DirNone
}
