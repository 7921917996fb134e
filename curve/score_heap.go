package curve

import "github.com/google/uuid"

// repairCandidate is one scored (target gap, source curve) pairing
// considered by the greedy planner.
type repairCandidate struct {
	target uuid.UUID
	source uuid.UUID
	gap    Gap
	dx     float64
	dy     float64
	score  float64
}

// Copied from container/heap - https://golang.org/pkg/container/heap/
// Why make copy? Just want to avoid type conversion

// scoreHeap is a max-heap of repair candidates by score.
type scoreHeap []*repairCandidate

func (h scoreHeap) Len() int           { return len(h) }
func (h scoreHeap) Less(i, j int) bool { return h[i].score > h[j].score }
func (h scoreHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push pushes the element x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *scoreHeap) Push(x *repairCandidate) {
	*h = append(*h, x)
	h.up(h.Len() - 1)
}

// Pop removes and returns the maximum element (according to Less) from the heap.
// The complexity is O(log n) where n = h.Len().
func (h *scoreHeap) Pop() *repairCandidate {
	n := h.Len() - 1
	h.Swap(0, n)
	h.down(0, n)
	heapSize := len(*h)
	lastNode := (*h)[heapSize-1]
	*h = (*h)[0 : heapSize-1]
	return lastNode
}

func (h scoreHeap) up(j int) {
	for {
		i := (j - 1) / 2
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

func (h scoreHeap) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}
