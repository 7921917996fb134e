package curve

// FrameStatus summarizes what one or more trajectories look like at a
// single frame. It drives per-frame color coding in the timeline strip.
type FrameStatus struct {
	KeyframeCount     int
	InterpolatedCount int
	TrackedCount      int
	EndframeCount     int
	NormalCount       int
	// IsStartframe marks a keyframe immediately following an endframe,
	// i.e. the first point of a newly reactivated run. Derived, never
	// stored on points.
	IsStartframe bool
	IsInactive   bool
	HasSelected  bool
}

// AggregateFrameStatuses reduces per-trajectory frame summaries into one
// record for multi-curve display. Counts sum; a frame is inactive only if
// every trajectory is inactive there; startframe and selection are
// satisfied by any single trajectory. The empty input yields the identity
// element: zero counts, inactive, nothing derived or selected.
func AggregateFrameStatuses(statuses []FrameStatus) FrameStatus {
	out := FrameStatus{IsInactive: true}
	for _, s := range statuses {
		out.KeyframeCount += s.KeyframeCount
		out.InterpolatedCount += s.InterpolatedCount
		out.TrackedCount += s.TrackedCount
		out.EndframeCount += s.EndframeCount
		out.NormalCount += s.NormalCount
		out.IsInactive = out.IsInactive && s.IsInactive
		out.IsStartframe = out.IsStartframe || s.IsStartframe
		out.HasSelected = out.HasSelected || s.HasSelected
	}
	return out
}

// SummarizeFrame builds the per-trajectory summary for one frame.
// A frame with no point contributes zero counts and counts as inactive.
func SummarizeFrame(traj Trajectory, frame int, selected bool) FrameStatus {
	out := FrameStatus{IsInactive: true}
	pt, ok := traj.PointAt(frame)
	if !ok {
		return out
	}
	switch pt.Status {
	case StatusKeyframe:
		out.KeyframeCount++
	case StatusInterpolated:
		out.InterpolatedCount++
	case StatusTracked:
		out.TrackedCount++
	case StatusEndframe:
		out.EndframeCount++
	default:
		out.NormalCount++
	}
	segments := BuildSegments(traj)
	if pt.Status == StatusKeyframe {
		if before, ok := traj.PointBefore(frame); ok {
			if before.Status == StatusEndframe {
				out.IsStartframe = true
			} else if seg := SegmentAtFrame(segments, before.Frame); seg != nil && !seg.Active {
				out.IsStartframe = true
			}
		}
	}
	if seg := SegmentAtFrame(segments, frame); seg != nil {
		out.IsInactive = !seg.Active
	}
	out.HasSelected = selected
	return out
}
