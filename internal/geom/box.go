package geom

import "fmt"

// Box is an axis-aligned cuboid of unit cubes: the product of one closed
// Interval per axis.
type Box struct {
	X Interval `json:"x" yaml:"x"`
	Y Interval `json:"y" yaml:"y"`
	Z Interval `json:"z" yaml:"z"`
}

// NewBox builds a Box from its three axis intervals.
func NewBox(x, y, z Interval) Box {
	return Box{X: x, Y: y, Z: z}
}

// Cube returns the box [lo, hi] on every axis.
func Cube(lo, hi int64) Box {
	iv := NewInterval(lo, hi)
	return Box{X: iv, Y: iv, Z: iv}
}

// Volume returns the number of unit cubes in the box.
//
// Coordinates of realistic inputs stay within a few hundred thousand per
// axis, so the product fits comfortably in an int64.
func (b Box) Volume() int64 {
	return b.X.Len() * b.Y.Len() * b.Z.Len()
}

// Contains reports whether other lies entirely within b.
func (b Box) Contains(other Box) bool {
	return b.X.Contains(other.X) && b.Y.Contains(other.Y) && b.Z.Contains(other.Z)
}

// Intersection returns the region shared by b and other. The boolean is
// false when the boxes are disjoint on at least one axis.
func (b Box) Intersection(other Box) (Box, bool) {
	x, ok := b.X.Intersection(other.X)
	if !ok {
		return Box{}, false
	}
	y, ok := b.Y.Intersection(other.Y)
	if !ok {
		return Box{}, false
	}
	z, ok := b.Z.Intersection(other.Z)
	if !ok {
		return Box{}, false
	}
	return Box{X: x, Y: y, Z: z}, true
}

// Intersects reports whether b and other share at least one unit cube.
func (b Box) Intersects(other Box) bool {
	_, ok := b.Intersection(other)
	return ok
}

// SplitAround returns disjoint boxes that exactly tile b minus its overlap
// with other.
//
// Per axis, b is cut into the overlap interval plus up to two remainder
// intervals. Every combination that picks a remainder on at least one axis
// becomes a piece; the combination that picks the overlap on all three axes
// is the overlap itself and is left out. That yields at most 26 pieces and
// guarantees
//
//	b.Volume() == common.Volume() + sum(piece.Volume())
//
// The result is empty when b equals other, when other contains b, or when
// the boxes are disjoint.
func (b Box) SplitAround(other Box) []Box {
	if b == other {
		return nil
	}
	common, ok := b.Intersection(other)
	if !ok {
		return nil
	}

	// choices[axis] lists the candidate intervals for that axis; the overlap
	// is always last so index len-1 means "common" on that axis.
	choices := [3][]Interval{
		append(b.X.SplitAround(common.X), common.X),
		append(b.Y.SplitAround(common.Y), common.Y),
		append(b.Z.SplitAround(common.Z), common.Z),
	}

	var pieces []Box
	for ix, x := range choices[0] {
		for iy, y := range choices[1] {
			for iz, z := range choices[2] {
				allCommon := ix == len(choices[0])-1 &&
					iy == len(choices[1])-1 &&
					iz == len(choices[2])-1
				if allCommon {
					continue
				}
				pieces = append(pieces, Box{X: x, Y: y, Z: z})
			}
		}
	}
	return pieces
}

// String formats the box the way the instruction grammar writes it.
func (b Box) String() string {
	return fmt.Sprintf("x=%s,y=%s,z=%s", b.X, b.Y, b.Z)
}
