package curve

// ApplyFill merges replacement points produced by a filler back into the
// trajectory and applies the status-transition policy:
//
//   - existing points inside the gap range are removed first, so the fill
//     never sits alongside stale duplicates;
//   - when the point immediately preceding the gap is an endframe it is
//     rewritten to keyframe, healing the boundary so the two runs merge
//     into one active segment, and every filled frame becomes tracked;
//   - when the preceding point is already a keyframe the run is active and
//     every filled frame becomes tracked as well;
//   - otherwise the first filled frame becomes keyframe (reopening the
//     run) and the rest tracked.
//
// Without the keyframe at the closing side of the old boundary, tracked
// fill points following an unconverted endframe would be reclassified
// inactive and a successful fill would still render as a dashed gap.
//
// The merged list is normalized (sorted ascending, unique frames).
// Applying the policy again to an already-healed trajectory yields the
// same trajectory. An empty fill returns the input unchanged.
func ApplyFill(traj Trajectory, gap Gap, fill Trajectory) Trajectory {
	if len(fill) == 0 {
		return traj
	}

	out := make(Trajectory, 0, len(traj)+len(fill))
	for _, pt := range traj {
		if gap.Contains(pt.Frame) {
			continue
		}
		out = append(out, pt)
	}

	runReopened := false
	if before, ok := out.PointBefore(gap.Start); ok {
		switch before.Status {
		case StatusEndframe:
			for i := range out {
				if out[i].Frame == before.Frame {
					out[i].Status = StatusKeyframe
					break
				}
			}
			runReopened = true
		case StatusKeyframe:
			runReopened = true
		}
	}

	sortedFill := fill.Clone()
	sortedFill.SortByFrame()
	for i, pt := range sortedFill {
		if i == 0 && !runReopened {
			out = append(out, pt.WithStatus(StatusKeyframe))
			continue
		}
		out = append(out, pt.WithStatus(StatusTracked))
	}
	return out.Normalize()
}
