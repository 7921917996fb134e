package curve

// Densify fills missing integer frames inside active segments so that a
// line renderer can draw them continuously. Synthesized points are linear
// interpolations tagged interpolated; existing points keep their original
// status. Inactive segments and segments with fewer than two points pass
// through unchanged. The densified trajectory is consumed by drawing only
// and is never persisted back.
func Densify(points Trajectory) Trajectory {
	segments := BuildSegments(points)
	if len(segments) == 0 {
		return points
	}
	out := make(Trajectory, 0, len(points))
	for _, seg := range segments {
		if !seg.Active || seg.PointCount() < 2 {
			out = append(out, seg.Points...)
			continue
		}
		sorted := seg.Points.Clone()
		sorted.SortByFrame()
		for i := 0; i < len(sorted)-1; i++ {
			lo, hi := sorted[i], sorted[i+1]
			out = append(out, lo)
			span := float64(hi.Frame - lo.Frame)
			for frame := lo.Frame + 1; frame < hi.Frame; frame++ {
				t := float64(frame-lo.Frame) / span
				pos := lerpPosition(lo.Pos(), hi.Pos(), t)
				out = append(out, NewPoint(frame, pos.X, pos.Y, StatusInterpolated))
			}
		}
		out = append(out, sorted[len(sorted)-1])
	}
	return out
}
