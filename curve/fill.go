package curve

import (
	"sort"

	"github.com/pkg/errors"
)

// FillLinear interpolates the gap linearly between the point immediately
// before Start and the point immediately after End. Returns false when
// either boundary point is absent or the boundary frames coincide.
func FillLinear(traj Trajectory, gap Gap) (Trajectory, bool) {
	before, okB := traj.PointBefore(gap.Start)
	after, okA := traj.PointAfter(gap.End)
	if !okB || !okA || before.Frame == after.Frame {
		return nil, false
	}
	fill := make(Trajectory, 0, gap.Len())
	span := float64(after.Frame - before.Frame)
	for frame := gap.Start; frame <= gap.End; frame++ {
		t := float64(frame-before.Frame) / span
		pos := lerpPosition(before.Pos(), after.Pos(), t)
		fill = append(fill, NewPoint(frame, pos.X, pos.Y, StatusTracked))
	}
	return fill, true
}

// FillFromSource copies the source trajectory over the gap, shifted by the
// scalar offset (dx, dy). Gap frames absent from the source are skipped,
// so a partial fill is legal. Returns false when the source covers no gap
// frame at all.
func FillFromSource(source Trajectory, gap Gap, dx, dy float64) (Trajectory, bool) {
	fill := make(Trajectory, 0, gap.Len())
	for frame := gap.Start; frame <= gap.End; frame++ {
		sp, ok := source.PointAt(frame)
		if !ok {
			continue
		}
		pos := sp.Pos().Add(dx, dy)
		fill = append(fill, NewPoint(frame, pos.X, pos.Y, StatusTracked))
	}
	if len(fill) == 0 {
		return nil, false
	}
	return fill, true
}

// FillAveraged fills the gap from several sources at once, each corrected
// by its own offset. A frame is emitted only when every source has data
// there; partial coverage across sources is never averaged. The offsets
// slice must parallel the sources slice.
func FillAveraged(sources []Trajectory, offsets []Position, gap Gap) (Trajectory, error) {
	if len(sources) != len(offsets) {
		return nil, errors.Errorf("sources and offsets must have the same length: %d != %d", len(sources), len(offsets))
	}
	if len(sources) == 0 {
		return nil, nil
	}
	fill := make(Trajectory, 0, gap.Len())
	for frame := gap.Start; frame <= gap.End; frame++ {
		sumX, sumY := 0.0, 0.0
		covered := true
		for i, source := range sources {
			sp, ok := source.PointAt(frame)
			if !ok {
				covered = false
				break
			}
			sumX += sp.X + offsets[i].X
			sumY += sp.Y + offsets[i].Y
		}
		if !covered {
			continue
		}
		n := float64(len(sources))
		fill = append(fill, NewPoint(frame, sumX/n, sumY/n, StatusTracked))
	}
	return fill, nil
}

// FillInterpolatedOffset copies the source over the gap with a
// time-varying correction: the offset at each gap frame is linearly
// interpolated between the two nearest anchors, clamped to the first and
// the last anchor outside their range. With a single usable anchor it
// degrades to the scalar copy strategy; with none it fails.
func FillInterpolatedOffset(source Trajectory, gap Gap, anchors []OffsetAnchor) (Trajectory, bool) {
	switch len(anchors) {
	case 0:
		return nil, false
	case 1:
		return FillFromSource(source, gap, anchors[0].DX, anchors[0].DY)
	}
	sorted := make([]OffsetAnchor, len(anchors))
	copy(sorted, anchors)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Frame < sorted[j].Frame
	})

	fill := make(Trajectory, 0, gap.Len())
	for frame := gap.Start; frame <= gap.End; frame++ {
		sp, ok := source.PointAt(frame)
		if !ok {
			continue
		}
		dx, dy := offsetAt(sorted, frame)
		fill = append(fill, NewPoint(frame, sp.X+dx, sp.Y+dy, StatusTracked))
	}
	if len(fill) == 0 {
		return nil, false
	}
	return fill, true
}

// offsetAt interpolates the correction between the two anchors bracketing
// the frame. Anchors must be sorted ascending by frame and hold at least
// two entries.
func offsetAt(anchors []OffsetAnchor, frame int) (float64, float64) {
	if frame <= anchors[0].Frame {
		return anchors[0].DX, anchors[0].DY
	}
	last := anchors[len(anchors)-1]
	if frame >= last.Frame {
		return last.DX, last.DY
	}
	for i := 1; i < len(anchors); i++ {
		lo, hi := anchors[i-1], anchors[i]
		if frame > hi.Frame {
			continue
		}
		if hi.Frame == lo.Frame {
			return hi.DX, hi.DY
		}
		t := float64(frame-lo.Frame) / float64(hi.Frame-lo.Frame)
		return lerpFloat64(lo.DX, hi.DX, t), lerpFloat64(lo.DY, hi.DY, t)
	}
	return last.DX, last.DY
}
