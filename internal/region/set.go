package region

import (
	"github.com/google/btree"
	"github.com/samber/lo"

	"github.com/shinji-kodama/reactor-reboot/internal/geom"
)

// btreeDegree is the branching factor of the backing B-tree.
const btreeDegree = 16

// Instruction turns every unit cube of Box on or off.
type Instruction struct {
	On  bool
	Box geom.Box
}

// Stats counts what Apply did to the set since it was created.
type Stats struct {
	// Applied is the number of instructions applied.
	Applied int
	// Splits counts overlapping pairs that were split apart.
	Splits int
	// Discarded counts candidates dropped because they were already lit.
	Discarded int
	// Superseded counts lit boxes removed because a candidate covered them.
	Superseded int
	// Inserted counts boxes added to the set.
	Inserted int
	// Carved counts lit boxes touched by an off instruction.
	Carved int
}

// Set is a collection of pairwise-disjoint lit boxes.
// The zero value is not usable; create one with New.
type Set struct {
	boxes *btree.BTreeG[geom.Box]
	stats Stats
}

// New returns an empty Set.
func New() *Set {
	return &Set{boxes: btree.NewG(btreeDegree, lessBox)}
}

// lessBox orders boxes by lower corner, then by upper corner. Disjoint boxes
// never share a lower corner, so the order is total over a valid Set.
func lessBox(a, b geom.Box) bool {
	switch {
	case a.X.From != b.X.From:
		return a.X.From < b.X.From
	case a.Y.From != b.Y.From:
		return a.Y.From < b.Y.From
	case a.Z.From != b.Z.From:
		return a.Z.From < b.Z.From
	case a.X.To != b.X.To:
		return a.X.To < b.X.To
	case a.Y.To != b.Y.To:
		return a.Y.To < b.Y.To
	default:
		return a.Z.To < b.Z.To
	}
}

// Apply updates the set with one instruction.
func (s *Set) Apply(in Instruction) {
	s.stats.Applied++
	if in.On {
		s.turnOn(in.Box)
	} else {
		s.turnOff(in.Box)
	}
}

// turnOn lights box using an explicit worklist. Each candidate popped from
// the queue is either dropped (already lit), inserted (touches nothing), or
// split against one overlapping lit box; the pieces go back on the queue.
func (s *Set) turnOn(box geom.Box) {
	queue := []geom.Box{box}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		var (
			superseded []geom.Box
			overlap    geom.Box
			hasOverlap bool
			covered    bool
		)
		s.boxes.Ascend(func(e geom.Box) bool {
			switch {
			case c.Contains(e):
				superseded = append(superseded, e)
			case e.Contains(c):
				// A lit box covering c cannot coexist with boxes inside c.
				covered = true
				return false
			case !hasOverlap && e.Intersects(c):
				overlap, hasOverlap = e, true
			}
			return true
		})

		for _, e := range superseded {
			s.boxes.Delete(e)
			s.stats.Superseded++
		}

		switch {
		case covered:
			s.stats.Discarded++
		case hasOverlap:
			s.boxes.Delete(overlap)
			s.stats.Splits++
			common, _ := c.Intersection(overlap)
			queue = append(queue, overlap.SplitAround(c)...)
			queue = append(queue, c.SplitAround(overlap)...)
			queue = append(queue, common)
		default:
			s.boxes.ReplaceOrInsert(c)
			s.stats.Inserted++
		}
	}
}

// turnOff removes box from every lit box it touches. Hits are collected
// first so the tree is never modified while it is being walked.
func (s *Set) turnOff(box geom.Box) {
	var hits []geom.Box
	s.boxes.Ascend(func(e geom.Box) bool {
		if e.Intersects(box) {
			hits = append(hits, e)
		}
		return true
	})

	for _, e := range hits {
		s.boxes.Delete(e)
		s.stats.Carved++
		if box.Contains(e) {
			continue
		}
		for _, rest := range e.SplitAround(box) {
			s.boxes.ReplaceOrInsert(rest)
			s.stats.Inserted++
		}
	}
}

// Volume returns the number of lit unit cubes. An empty set has volume 0.
func (s *Set) Volume() int64 {
	return lo.SumBy(s.Boxes(), geom.Box.Volume)
}

// Len returns the number of boxes in the set.
func (s *Set) Len() int {
	return s.boxes.Len()
}

// Boxes returns a snapshot of the lit boxes ordered by lower corner.
func (s *Set) Boxes() []geom.Box {
	out := make([]geom.Box, 0, s.boxes.Len())
	s.boxes.Ascend(func(b geom.Box) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Stats returns the counters accumulated by Apply.
func (s *Set) Stats() Stats {
	return s.stats
}
