package curve

import (
	"github.com/arthurkushman/go-hungarian"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MatchingAlgorithm selects how the planner assigns source curves to
// target gaps.
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmHungarian uses the Hungarian algorithm (Kuhn-Munkres) for optimal assignment
	MatchingAlgorithmHungarian MatchingAlgorithm = iota
	// MatchingAlgorithmGreedy uses a greedy algorithm for faster but potentially suboptimal assignment
	MatchingAlgorithmGreedy
)

// TrackedCurve is the value contract with the data layer: one named
// trajectory as loaded from the tracking software.
type TrackedCurve struct {
	ID     uuid.UUID
	Name   string
	Points Trajectory
}

// NewTrackedCurve wraps a trajectory with a fresh identity.
func NewTrackedCurve(name string, points Trajectory) TrackedCurve {
	return TrackedCurve{
		ID:     uuid.New(),
		Name:   name,
		Points: points,
	}
}

// RepairAssignment pairs one target curve's gap with the source curve
// chosen to fill it and the scalar offset to apply.
type RepairAssignment struct {
	Target uuid.UUID
	Source uuid.UUID
	Gap    Gap
	DX     float64
	DY     float64
	Score  float64
}

// PlanRepairs assigns a distinct source curve to every target curve that
// has a gap around the given frame. Pairs are scored by how much of the
// gap the source covers and how rigid the target-source offset is over
// the overlap; a curve never sources its own gap. Targets without a gap
// or without any scoring source are left out of the plan.
func PlanRepairs(targets, sources []TrackedCurve, frame int, algorithm MatchingAlgorithm) []RepairAssignment {
	type openGap struct {
		curve TrackedCurve
		gap   Gap
	}
	open := make([]openGap, 0, len(targets))
	for _, target := range targets {
		if gap, ok := FindGapAroundFrame(target.Points, frame); ok {
			open = append(open, openGap{curve: target, gap: gap})
		}
	}
	if len(open) == 0 || len(sources) == 0 {
		return nil
	}

	candidates := make([][]*repairCandidate, len(open))
	for i, og := range open {
		candidates[i] = make([]*repairCandidate, len(sources))
		for j, source := range sources {
			if source.ID == og.curve.ID {
				continue
			}
			if c := scorePair(og.curve, source, og.gap); c != nil {
				candidates[i][j] = c
			}
		}
	}

	switch algorithm {
	case MatchingAlgorithmHungarian:
		return assignHungarian(candidates)
	default:
		return assignGreedy(candidates)
	}
}

// scorePair scores one target-source pairing, nil when the source cannot
// serve the gap at all (no overlap to align on or no gap frame covered).
func scorePair(target, source TrackedCurve, gap Gap) *repairCandidate {
	overlap := OverlapFrames(target.Points, source.Points, gap)
	dx, dy, ok := MeanOffset(target.Points, source.Points, overlap)
	if !ok {
		return nil
	}
	sourceFrames := source.Points.Frames()
	covered := 0
	for frame := gap.Start; frame <= gap.End; frame++ {
		if _, ok := sourceFrames[frame]; ok {
			covered++
		}
	}
	if covered == 0 {
		return nil
	}
	coverage := float64(covered) / float64(gap.Len())
	consistency := OffsetConsistency(target.Points, source.Points, overlap)
	return &repairCandidate{
		target: target.ID,
		source: source.ID,
		gap:    gap,
		dx:     dx,
		dy:     dy,
		score:  coverage*0.8 + consistency*0.2,
	}
}

// assignHungarian pads the score matrix to a square one and solves the
// optimal assignment. Cells without a viable candidate score zero and
// their assignments are discarded afterwards.
func assignHungarian(candidates [][]*repairCandidate) []RepairAssignment {
	numTargets := len(candidates)
	numSources := len(candidates[0])
	size := maxInt(numTargets, numSources)
	matrix := make([][]float64, size)
	for i := range matrix {
		matrix[i] = make([]float64, size)
		if i >= numTargets {
			continue
		}
		for j, c := range candidates[i] {
			if c != nil {
				matrix[i][j] = c.score
			}
		}
	}

	assignments := hungarian.SolveMax(matrix)
	plan := make([]RepairAssignment, 0, numTargets)
	for targetIdx, row := range assignments {
		if targetIdx >= numTargets {
			continue
		}
		for sourceIdx := range row {
			if sourceIdx >= numSources {
				break
			}
			if c := candidates[targetIdx][sourceIdx]; c != nil {
				plan = append(plan, assignmentFrom(c))
			}
			break
		}
	}
	return plan
}

// assignGreedy processes candidates from the highest score to the lowest,
// reserving each source for a single target.
func assignGreedy(candidates [][]*repairCandidate) []RepairAssignment {
	pq := make(scoreHeap, 0)
	for _, row := range candidates {
		for _, c := range row {
			if c != nil {
				pq.Push(c)
			}
		}
	}

	reservedSources := make(map[uuid.UUID]struct{})
	assignedTargets := make(map[uuid.UUID]struct{})
	plan := make([]RepairAssignment, 0, len(candidates))
	for pq.Len() > 0 {
		c := pq.Pop()
		if _, ok := assignedTargets[c.target]; ok {
			continue
		}
		if _, ok := reservedSources[c.source]; ok {
			continue
		}
		plan = append(plan, assignmentFrom(c))
		assignedTargets[c.target] = struct{}{}
		reservedSources[c.source] = struct{}{}
	}
	return plan
}

func assignmentFrom(c *repairCandidate) RepairAssignment {
	return RepairAssignment{
		Target: c.target,
		Source: c.source,
		Gap:    c.gap,
		DX:     c.dx,
		DY:     c.dy,
		Score:  c.score,
	}
}

// ExecutePlan applies every assignment: the source is copied over the gap
// with its offset and the status-transition policy merges the fill back.
// Curves are returned as new values; inputs are not mutated. Assignments
// referencing unknown curve IDs are a programming-contract violation.
func ExecutePlan(targets, sources []TrackedCurve, plan []RepairAssignment) ([]TrackedCurve, error) {
	byID := make(map[uuid.UUID]TrackedCurve, len(sources))
	for _, source := range sources {
		byID[source.ID] = source
	}
	out := make([]TrackedCurve, len(targets))
	copy(out, targets)

	for _, assignment := range plan {
		source, ok := byID[assignment.Source]
		if !ok {
			return nil, errors.Errorf("unknown source curve %s", assignment.Source)
		}
		idx := -1
		for i := range out {
			if out[i].ID == assignment.Target {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, errors.Errorf("unknown target curve %s", assignment.Target)
		}
		fill, ok := FillFromSource(source.Points, assignment.Gap, assignment.DX, assignment.DY)
		if !ok {
			continue
		}
		out[idx].Points = ApplyFill(out[idx].Points, assignment.Gap, fill)
	}
	return out, nil
}
