package curve

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

const defaultAnchorWindow = 5

// OffsetAnchor is a known-good geometric correction between two
// trajectories at one frame: target position = source position + (DX, DY).
type OffsetAnchor struct {
	Frame int
	DX    float64
	DY    float64
}

// OverlapFrames returns, sorted ascending, the frames where both
// trajectories have data, excluding frames inside the gap.
func OverlapFrames(target, source Trajectory, exclude Gap) []int {
	sourceFrames := source.Frames()
	frames := make([]int, 0, len(target))
	for _, pt := range target {
		if exclude.Contains(pt.Frame) {
			continue
		}
		if _, ok := sourceFrames[pt.Frame]; ok {
			frames = append(frames, pt.Frame)
		}
	}
	sort.Ints(frames)
	return frames
}

// MeanOffset computes the mean (target - source) displacement over the
// given overlap frames. Returns false when no usable frame exists.
func MeanOffset(target, source Trajectory, frames []int) (float64, float64, bool) {
	dxs := make([]float64, 0, len(frames))
	dys := make([]float64, 0, len(frames))
	for _, frame := range frames {
		tp, okT := target.PointAt(frame)
		sp, okS := source.PointAt(frame)
		if !okT || !okS {
			continue
		}
		dxs = append(dxs, tp.X-sp.X)
		dys = append(dys, tp.Y-sp.Y)
	}
	if len(dxs) == 0 {
		return 0, 0, false
	}
	return stat.Mean(dxs, nil), stat.Mean(dys, nil), true
}

// OffsetConsistency scores how stable the (target - source) displacement
// is over the overlap frames, in (0;1]. 1 means a perfectly rigid offset.
// Returns 0 when fewer than two overlap frames are usable.
func OffsetConsistency(target, source Trajectory, frames []int) float64 {
	ds := make([]float64, 0, len(frames))
	for _, frame := range frames {
		tp, okT := target.PointAt(frame)
		sp, okS := source.PointAt(frame)
		if !okT || !okS {
			continue
		}
		ds = append(ds, euclideanDistance(tp.Pos(), sp.Pos()))
	}
	if len(ds) < 2 {
		return 0
	}
	return 1.0 / (1.0 + stat.StdDev(ds, nil))
}

// AnchorsAroundGap computes offset anchors from the overlap windows
// immediately before and after the gap. Each side contributes at most one
// anchor, placed at its overlap frame nearest to the gap and carrying the
// mean offset of up to windowSize overlap frames. Sides with no overlap
// are skipped, so the result holds 0, 1 or 2 anchors.
func AnchorsAroundGap(target, source Trajectory, gap Gap, windowSize int) []OffsetAnchor {
	if windowSize <= 0 {
		windowSize = defaultAnchorWindow
	}
	overlap := OverlapFrames(target, source, gap)

	before := make([]int, 0, windowSize)
	after := make([]int, 0, windowSize)
	for _, frame := range overlap {
		if frame < gap.Start {
			before = append(before, frame)
		} else if frame > gap.End {
			after = append(after, frame)
		}
	}
	if len(before) > windowSize {
		before = before[len(before)-windowSize:]
	}
	if len(after) > windowSize {
		after = after[:windowSize]
	}

	anchors := make([]OffsetAnchor, 0, 2)
	if len(before) > 0 {
		if dx, dy, ok := MeanOffset(target, source, before); ok {
			anchors = append(anchors, OffsetAnchor{Frame: before[len(before)-1], DX: dx, DY: dy})
		}
	}
	if len(after) > 0 {
		if dx, dy, ok := MeanOffset(target, source, after); ok {
			anchors = append(anchors, OffsetAnchor{Frame: after[0], DX: dx, DY: dy})
		}
	}
	return anchors
}
