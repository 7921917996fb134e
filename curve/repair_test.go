package curve

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gappedCurve builds a curve riding the 10-units-per-frame ramp shifted
// by (dx, dy), with a held gap between an endframe at 10 and a keyframe
// at 21.
func gappedCurve(name string, dx, dy float64) TrackedCurve {
	points := make(Trajectory, 0, 20)
	for frame := 1; frame <= 30; frame++ {
		if frame > 10 && frame < 21 {
			continue
		}
		status := StatusTracked
		switch frame {
		case 1, 21:
			status = StatusKeyframe
		case 10:
			status = StatusEndframe
		}
		points = append(points, NewPoint(frame, float64(frame*10)+dx, float64(frame*10)+dy, status))
	}
	return NewTrackedCurve(name, points)
}

func TestPlanRepairsPrefersFullCoverage(t *testing.T) {
	target := gappedCurve("target", 5, -5)
	full := NewTrackedCurve("full", rampSource(1, 30))
	partial := NewTrackedCurve("partial", rampSource(1, 15))

	for _, algorithm := range []MatchingAlgorithm{MatchingAlgorithmGreedy, MatchingAlgorithmHungarian} {
		plan := PlanRepairs([]TrackedCurve{target}, []TrackedCurve{partial, full, target}, 15, algorithm)
		require.Len(t, plan, 1)
		assert.Equal(t, target.ID, plan[0].Target)
		assert.Equal(t, full.ID, plan[0].Source, "full-coverage source must win")
		assert.Equal(t, Gap{Start: 11, End: 20}, plan[0].Gap)
		assert.InDelta(t, 5.0, plan[0].DX, 1e-9)
		assert.InDelta(t, -5.0, plan[0].DY, 1e-9)
	}
}

func TestPlanRepairsDistinctSources(t *testing.T) {
	targetOne := gappedCurve("one", 1, 1)
	targetTwo := gappedCurve("two", 2, 2)
	sourceA := NewTrackedCurve("a", rampSource(1, 30))
	sourceB := NewTrackedCurve("b", rampSource(1, 15))

	for _, algorithm := range []MatchingAlgorithm{MatchingAlgorithmGreedy, MatchingAlgorithmHungarian} {
		plan := PlanRepairs(
			[]TrackedCurve{targetOne, targetTwo},
			[]TrackedCurve{sourceA, sourceB},
			15, algorithm)
		require.Len(t, plan, 2)
		assert.NotEqual(t, plan[0].Source, plan[1].Source, "each source serves one target")
		assert.NotEqual(t, plan[0].Target, plan[1].Target)
	}
}

func TestPlanRepairsNothingToDo(t *testing.T) {
	healthy := NewTrackedCurve("healthy", rampSource(1, 30))
	source := NewTrackedCurve("source", rampSource(1, 30))
	assert.Empty(t, PlanRepairs([]TrackedCurve{healthy}, []TrackedCurve{source}, 15, MatchingAlgorithmGreedy))
	assert.Empty(t, PlanRepairs(nil, []TrackedCurve{source}, 15, MatchingAlgorithmGreedy))

	// A gap no source can reach yields no assignment.
	target := gappedCurve("target", 0, 0)
	far := NewTrackedCurve("far", rampSource(100, 120))
	assert.Empty(t, PlanRepairs([]TrackedCurve{target}, []TrackedCurve{far}, 15, MatchingAlgorithmGreedy))
}

func TestExecutePlan(t *testing.T) {
	target := gappedCurve("target", 5, -5)
	source := NewTrackedCurve("source", rampSource(1, 30))

	plan := PlanRepairs([]TrackedCurve{target}, []TrackedCurve{source}, 15, MatchingAlgorithmGreedy)
	require.Len(t, plan, 1)

	repaired, err := ExecutePlan([]TrackedCurve{target}, []TrackedCurve{source}, plan)
	require.NoError(t, err)
	require.Len(t, repaired, 1)

	healed := repaired[0].Points
	assert.Len(t, healed, 30)
	for frame := 11; frame <= 20; frame++ {
		pt, ok := healed.PointAt(frame)
		require.True(t, ok, "frame %d missing after repair", frame)
		assert.Equal(t, StatusTracked, pt.Status)
		assert.InDelta(t, float64(frame*10)+5, pt.X, 1e-9)
		assert.InDelta(t, float64(frame*10)-5, pt.Y, 1e-9)
	}
	if pt, _ := healed.PointAt(10); pt.Status != StatusKeyframe {
		t.Errorf("boundary endframe must be healed to keyframe, got %v", pt.Status)
	}
	segments := BuildSegments(healed)
	assert.Len(t, segments, 1)
	assert.True(t, segments[0].Active)

	// Input curves stay untouched.
	if pt, _ := target.Points.PointAt(10); pt.Status != StatusEndframe {
		t.Error("ExecutePlan must not mutate its inputs")
	}
}

func TestExecutePlanUnknownCurve(t *testing.T) {
	target := gappedCurve("target", 0, 0)
	source := NewTrackedCurve("source", rampSource(1, 30))
	_, err := ExecutePlan([]TrackedCurve{target}, []TrackedCurve{source}, []RepairAssignment{
		{Target: target.ID, Source: uuid.New(), Gap: Gap{Start: 11, End: 20}},
	})
	require.Error(t, err)

	_, err = ExecutePlan([]TrackedCurve{target}, []TrackedCurve{source}, []RepairAssignment{
		{Target: uuid.New(), Source: source.ID, Gap: Gap{Start: 11, End: 20}},
	})
	require.Error(t, err)
}
