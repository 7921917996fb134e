package curve

import "sort"

// Trajectory is an ordered sequence of points of one tracked feature.
// The engine keeps it sorted ascending by frame with unique frames;
// Normalize restores that invariant after any mutation.
type Trajectory []Point

// SortByFrame sorts the trajectory in place ascending by frame.
func (t Trajectory) SortByFrame() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Frame < t[j].Frame
	})
}

// Normalize returns a copy with unique, strictly increasing frames.
// On duplicate frames the last write wins.
func (t Trajectory) Normalize() Trajectory {
	byFrame := make(map[int]Point, len(t))
	for _, pt := range t {
		byFrame[pt.Frame] = pt
	}
	out := make(Trajectory, 0, len(byFrame))
	for _, pt := range byFrame {
		out = append(out, pt)
	}
	out.SortByFrame()
	return out
}

// Clone returns a copy of the trajectory sharing no backing storage.
func (t Trajectory) Clone() Trajectory {
	out := make(Trajectory, len(t))
	copy(out, t)
	return out
}

// PointAt returns the point at the exact frame.
func (t Trajectory) PointAt(frame int) (Point, bool) {
	for _, pt := range t {
		if pt.Frame == frame {
			return pt, true
		}
	}
	return Point{}, false
}

// PointBefore returns the point with the greatest frame strictly below
// the given frame.
func (t Trajectory) PointBefore(frame int) (Point, bool) {
	var best Point
	found := false
	for _, pt := range t {
		if pt.Frame < frame && (!found || pt.Frame > best.Frame) {
			best = pt
			found = true
		}
	}
	return best, found
}

// PointAfter returns the point with the smallest frame strictly above
// the given frame.
func (t Trajectory) PointAfter(frame int) (Point, bool) {
	var best Point
	found := false
	for _, pt := range t {
		if pt.Frame > frame && (!found || pt.Frame < best.Frame) {
			best = pt
			found = true
		}
	}
	return best, found
}

// Frames returns the set of frames present in the trajectory.
func (t Trajectory) Frames() map[int]struct{} {
	out := make(map[int]struct{}, len(t))
	for _, pt := range t {
		out[pt.Frame] = struct{}{}
	}
	return out
}

// FrameRange returns the first and the last frame of the trajectory.
func (t Trajectory) FrameRange() (int, int, bool) {
	if len(t) == 0 {
		return 0, 0, false
	}
	first, last := t[0].Frame, t[0].Frame
	for _, pt := range t[1:] {
		if pt.Frame < first {
			first = pt.Frame
		}
		if pt.Frame > last {
			last = pt.Frame
		}
	}
	return first, last, true
}
