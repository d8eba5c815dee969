// Package region maintains the set of lit cubes as a collection of
// pairwise-disjoint boxes.
//
// A Set starts empty and is mutated one instruction at a time by Apply.
// Turning a box on runs a worklist that splits candidates around the boxes
// they overlap until every remaining piece is either already lit or free to
// insert. Turning a box off carves it out of every lit box it touches.
// After every Apply no two boxes in the set share a unit cube, so the lit
// volume is simply the sum of box volumes.
//
// Boxes are kept in a B-tree ordered by their lower corner, which gives
// Boxes a deterministic order without any extra sorting.
package region
