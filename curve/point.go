package curve

import "strings"

// Status is the per-point tracking status as produced by the tracking
// software. The set is closed: legacy representations (bool, free-text
// string) are normalized via StatusFromLegacy and unknown values fail
// closed to StatusNormal.
type Status uint8

const (
	// StatusNormal is a plain point with no special role.
	StatusNormal Status = iota
	// StatusInterpolated is a point synthesized between real samples.
	StatusInterpolated
	// StatusKeyframe is a user-confirmed point. It also reopens an active
	// segment after an endframe.
	StatusKeyframe
	// StatusTracked is an algorithmically produced point inside an active
	// segment, including gap-filled continuations.
	StatusTracked
	// StatusEndframe marks the last point of an active run before the
	// feature becomes occluded or lost.
	StatusEndframe
)

func (s Status) String() string {
	switch s {
	case StatusInterpolated:
		return "interpolated"
	case StatusKeyframe:
		return "keyframe"
	case StatusTracked:
		return "tracked"
	case StatusEndframe:
		return "endframe"
	default:
		return "normal"
	}
}

// StatusFromBool converts the oldest storage format where the only flag
// was "interpolated or not".
func StatusFromBool(interpolated bool) Status {
	if interpolated {
		return StatusInterpolated
	}
	return StatusNormal
}

// StatusFromString parses a free-text status. Unrecognized values fail
// closed to StatusNormal.
func StatusFromString(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interpolated":
		return StatusInterpolated
	case "keyframe":
		return StatusKeyframe
	case "tracked":
		return StatusTracked
	case "endframe":
		return StatusEndframe
	default:
		return StatusNormal
	}
}

// StatusFromLegacy normalizes any historical status representation:
// the canonical enum, a bool or a string. Anything else is StatusNormal.
func StatusFromLegacy(v any) Status {
	switch s := v.(type) {
	case Status:
		return s
	case bool:
		return StatusFromBool(s)
	case string:
		return StatusFromString(s)
	default:
		return StatusNormal
	}
}

// Point is a single trajectory sample: one tracked feature at one frame.
// It is a plain value type, comparable by all four fields.
type Point struct {
	Frame  int
	X      float64
	Y      float64
	Status Status
}

func NewPoint(frame int, x, y float64, status Status) Point {
	return Point{
		Frame:  frame,
		X:      x,
		Y:      y,
		Status: status,
	}
}

// Pos returns the point's position.
func (p Point) Pos() Position {
	return Position{X: p.X, Y: p.Y}
}

// WithStatus returns a copy of the point with another status.
func (p Point) WithStatus(status Status) Point {
	p.Status = status
	return p
}

// isBoundary reports whether the point is a segment boundary marker.
func (p Point) isBoundary() bool {
	return p.Status == StatusEndframe || p.Status == StatusKeyframe
}
