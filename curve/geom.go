package curve

import "math"

// Position is a 2D screen-space position of a tracked feature.
type Position struct {
	X float64
	Y float64
}

func NewPosition(x, y float64) Position {
	return Position{
		X: x,
		Y: y,
	}
}

// Add returns the position shifted by (dx, dy).
func (p Position) Add(dx, dy float64) Position {
	return Position{
		X: p.X + dx,
		Y: p.Y + dy,
	}
}

// lerpPosition interpolates between two positions. t is expected in [0;1]
// but values outside of it are not clamped (extrapolation is legal).
func lerpPosition(a, b Position, t float64) Position {
	return Position{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

func lerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

func euclideanDistance(p1, p2 Position) float64 {
	return math.Sqrt(math.Pow(p1.X-p2.X, 2) + math.Pow(p1.Y-p2.Y, 2))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
