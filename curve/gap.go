package curve

// Gap is a closed frame interval [Start; End] with no data or with held
// points. Gaps carry no identity: they are recomputed from the trajectory
// whenever it changes, never persisted.
type Gap struct {
	Start int
	End   int
}

// Len returns the number of frames covered by the gap.
func (g Gap) Len() int {
	if g.End < g.Start {
		return 0
	}
	return g.End - g.Start + 1
}

// Contains reports whether the frame lies inside the gap.
func (g Gap) Contains(frame int) bool {
	return frame >= g.Start && frame <= g.End
}

// FindGapAroundFrame locates the gap enclosing the given frame.
//
// Two detection modes are tried in order. If the frame has no point, the
// gap is bounded by the nearest existing frames below and above (a gap
// with nothing below starts at frame 1; a gap with nothing above is
// open-ended and cannot be filled, so it is not reported). If the frame
// has a point, the gap is the held interval between the nearest preceding
// endframe and the nearest following boundary marker; the nearest boundary
// always wins, so endframe-endframe-keyframe produces two adjacent gaps.
//
// Degenerate intervals (adjacent boundary markers) and frames outside the
// detected interval report no gap.
func FindGapAroundFrame(traj Trajectory, frame int) (Gap, bool) {
	if len(traj) == 0 {
		return Gap{}, false
	}
	if _, ok := traj.PointAt(frame); !ok {
		return findMissingFrameGap(traj, frame)
	}
	return findStatusGap(traj, frame)
}

func findMissingFrameGap(traj Trajectory, frame int) (Gap, bool) {
	after, ok := traj.PointAfter(frame)
	if !ok {
		// Open-ended: nothing to interpolate towards.
		return Gap{}, false
	}
	start := 1
	if before, ok := traj.PointBefore(frame); ok {
		start = before.Frame + 1
	}
	gap := Gap{Start: start, End: after.Frame - 1}
	if gap.Start > gap.End || !gap.Contains(frame) {
		return Gap{}, false
	}
	return gap, true
}

func findStatusGap(traj Trajectory, frame int) (Gap, bool) {
	sorted := traj.Clone()
	sorted.SortByFrame()

	// Nearest endframe strictly before the frame of interest. A keyframe
	// found first means the frame sits in an active region.
	openIdx := -1
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Frame >= frame || !sorted[i].isBoundary() {
			continue
		}
		if sorted[i].Status == StatusKeyframe {
			return Gap{}, false
		}
		openIdx = i
		break
	}
	if openIdx < 0 {
		return Gap{}, false
	}

	// Nearest boundary marker after the opening endframe closes the gap.
	for _, pt := range sorted[openIdx+1:] {
		if !pt.isBoundary() {
			continue
		}
		gap := Gap{Start: sorted[openIdx].Frame + 1, End: pt.Frame - 1}
		if gap.Start > gap.End || !gap.Contains(frame) {
			return Gap{}, false
		}
		return gap, true
	}
	// Open-ended: the gap never closes.
	return Gap{}, false
}
