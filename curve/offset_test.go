package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapFrames(t *testing.T) {
	target := Trajectory{
		NewPoint(1, 0, 0, StatusNormal),
		NewPoint(2, 0, 0, StatusNormal),
		NewPoint(10, 0, 0, StatusNormal),
		NewPoint(15, 0, 0, StatusNormal),
	}
	source := rampSource(2, 12)
	frames := OverlapFrames(target, source, Gap{Start: 9, End: 11})
	assert.Equal(t, []int{2}, frames, "gap frames and non-shared frames excluded")
}

func TestMeanOffset(t *testing.T) {
	target := Trajectory{
		NewPoint(1, 15, 8, StatusNormal),
		NewPoint(2, 25, 18, StatusNormal),
	}
	source := Trajectory{
		NewPoint(1, 10, 10, StatusNormal),
		NewPoint(2, 20, 20, StatusNormal),
	}
	dx, dy, ok := MeanOffset(target, source, []int{1, 2})
	require.True(t, ok)
	assert.InDelta(t, 5.0, dx, 1e-9)
	assert.InDelta(t, -2.0, dy, 1e-9)

	_, _, ok = MeanOffset(target, source, nil)
	assert.False(t, ok, "no overlap frames means no offset")
}

func TestOffsetConsistency(t *testing.T) {
	target := rampSource(1, 10)
	rigid := make(Trajectory, 0, 10)
	for _, pt := range target {
		rigid = append(rigid, NewPoint(pt.Frame, pt.X-7, pt.Y+3, pt.Status))
	}
	wobbly := make(Trajectory, 0, 10)
	for i, pt := range target {
		wobbly = append(wobbly, NewPoint(pt.Frame, pt.X-7+float64(i*i), pt.Y, pt.Status))
	}
	frames := OverlapFrames(target, rigid, Gap{})

	rigidScore := OffsetConsistency(target, rigid, frames)
	wobblyScore := OffsetConsistency(target, wobbly, frames)
	assert.InDelta(t, 1.0, rigidScore, 1e-9)
	assert.Greater(t, rigidScore, wobblyScore)
	assert.Zero(t, OffsetConsistency(target, rigid, nil))
}

func TestAnchorsAroundGap(t *testing.T) {
	target := Trajectory{
		NewPoint(8, 85, 85, StatusTracked),
		NewPoint(9, 95, 95, StatusTracked),
		NewPoint(10, 105, 105, StatusEndframe),
		NewPoint(21, 215, 215, StatusKeyframe),
		NewPoint(22, 225, 225, StatusTracked),
	}
	source := rampSource(1, 30)
	gap := Gap{Start: 11, End: 20}

	anchors := AnchorsAroundGap(target, source, gap, 0)
	require.Len(t, anchors, 2)
	assert.Equal(t, 10, anchors[0].Frame)
	assert.Equal(t, 21, anchors[1].Frame)
	assert.InDelta(t, 5.0, anchors[0].DX, 1e-9)
	assert.InDelta(t, 5.0, anchors[1].DY, 1e-9)

	// No overlap after the gap: only the leading anchor survives.
	noTail := target[:3]
	anchors = AnchorsAroundGap(noTail, source, gap, 3)
	require.Len(t, anchors, 1)
	assert.Equal(t, 10, anchors[0].Frame)
}
