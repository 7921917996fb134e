package curve

// Segment is a maximal contiguous run of trajectory points whose activity
// does not change. Active runs are rendered solid, inactive (held) runs
// dashed with point markers suppressed.
type Segment struct {
	Points Trajectory
	Active bool
}

// PointCount returns the number of points in the segment.
func (s *Segment) PointCount() int {
	return len(s.Points)
}

// FrameRange returns the first and the last frame of the segment.
func (s *Segment) FrameRange() (int, int, bool) {
	return s.Points.FrameRange()
}

// BuildSegments partitions a trajectory into contiguous active/inactive
// segments from its status sequence.
//
// Activity mirrors the gap model of professional tracking tools: scanning
// in frame order, activity starts true; an endframe point is itself still
// active (the last point of its run) but everything after it is held until
// the next keyframe reopens the run. Interpolated and keyframe points are
// always active. An endframe with no following keyframe yields a trailing
// inactive segment that never closes.
func BuildSegments(points Trajectory) []Segment {
	if len(points) == 0 {
		return nil
	}
	sorted := points.Clone()
	sorted.SortByFrame()

	segments := make([]Segment, 0, 2)
	held := false
	var current *Segment
	for _, pt := range sorted {
		if pt.Status == StatusKeyframe {
			held = false
		}
		active := pointActive(pt, held)
		if current == nil || current.Active != active {
			segments = append(segments, Segment{Active: active})
			current = &segments[len(segments)-1]
		}
		current.Points = append(current.Points, pt)
		if pt.Status == StatusEndframe {
			held = true
		}
	}
	return segments
}

// pointActive applies the activity rule for a single point given the
// held state accumulated so far. Only tracked and normal points can be
// deactivated by a preceding endframe.
func pointActive(pt Point, held bool) bool {
	if !held {
		return true
	}
	switch pt.Status {
	case StatusTracked, StatusNormal:
		return false
	default:
		return true
	}
}

// SegmentAtFrame returns the segment holding a point at the exact frame,
// or nil when no segment has a point there.
func SegmentAtFrame(segments []Segment, frame int) *Segment {
	for i := range segments {
		first, last, ok := segments[i].FrameRange()
		if !ok || frame < first || frame > last {
			continue
		}
		if _, ok := segments[i].Points.PointAt(frame); ok {
			return &segments[i]
		}
	}
	return nil
}
