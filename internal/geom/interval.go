package geom

import "fmt"

// Interval is a closed range of integers [From, To]. A valid Interval
// always satisfies From <= To.
type Interval struct {
	From int64 `json:"from" yaml:"from"`
	To   int64 `json:"to" yaml:"to"`
}

// NewInterval returns the Interval [from, to].
// It panics if from > to, since such a range holds no integers.
func NewInterval(from, to int64) Interval {
	if from > to {
		panic(fmt.Sprintf("geom: invalid interval %d..%d", from, to))
	}
	return Interval{From: from, To: to}
}

// Len returns the number of integers in the interval.
func (i Interval) Len() int64 {
	return i.To - i.From + 1
}

// Intersection returns the overlapping sub-interval of i and other.
// The boolean is false when the two intervals share no integer.
func (i Interval) Intersection(other Interval) (Interval, bool) {
	from := max(i.From, other.From)
	to := min(i.To, other.To)
	if from > to {
		return Interval{}, false
	}
	return Interval{From: from, To: to}, true
}

// Contains reports whether other lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return other.From >= i.From && other.To <= i.To
}

// SplitAround returns the parts of i that lie strictly left and strictly
// right of its overlap with other, in that order. The result holds at most
// two intervals and is empty when other covers i or when they are disjoint.
func (i Interval) SplitAround(other Interval) []Interval {
	if i == other {
		return nil
	}
	common, ok := i.Intersection(other)
	if !ok {
		return nil
	}

	var splits []Interval
	if common.From > i.From {
		splits = append(splits, Interval{From: i.From, To: common.From - 1})
	}
	if common.To < i.To {
		splits = append(splits, Interval{From: common.To + 1, To: i.To})
	}
	return splits
}

// String formats the interval the way the instruction grammar writes it.
func (i Interval) String() string {
	return fmt.Sprintf("%d..%d", i.From, i.To)
}
