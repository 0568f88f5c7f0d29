package core

// Point is an integer cell coordinate on the maze grid
type Point struct {
	X, Y int
}

// Add returns the point offset by one step in direction d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Manhattan returns the L1 distance between two points
func (p Point) Manhattan(o Point) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Clamp restricts the point to [0,w) x [0,h)
func (p Point) Clamp(w, h int) Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.X >= w {
		p.X = w - 1
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y >= h {
		p.Y = h - 1
	}
	return p
}
