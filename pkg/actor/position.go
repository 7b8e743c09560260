package actor

import "math"

// Position is a point in arena space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Position) Add(o Position) Position { return Position{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Position) Sub(o Position) Position { return Position{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Position) Scale(f float64) Position { return Position{X: p.X * f, Y: p.Y * f} }

// Len returns the Euclidean length of p treated as a vector.
func (p Position) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns p scaled to length 1. The zero vector stays zero.
func (p Position) Unit() Position {
	l := p.Len()
	if l == 0 {
		return Position{}
	}
	return p.Scale(1 / l)
}

// DistSq returns the squared distance between a and b.
func DistSq(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Within reports whether a and b are strictly closer than radius.
func Within(a, b Position, radius float64) bool {
	return DistSq(a, b) < radius*radius
}
