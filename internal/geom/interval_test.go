package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInterval_Intersection covers overlapping, touching and disjoint ranges.
func TestInterval_Intersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Interval
		want   Interval
		wantOK bool
	}{
		{"partial overlap", NewInterval(0, 10), NewInterval(5, 15), NewInterval(5, 10), true},
		{"nested", NewInterval(0, 10), NewInterval(3, 4), NewInterval(3, 4), true},
		{"touching endpoint", NewInterval(0, 5), NewInterval(5, 9), NewInterval(5, 5), true},
		{"identical", NewInterval(-3, 3), NewInterval(-3, 3), NewInterval(-3, 3), true},
		{"disjoint", NewInterval(0, 4), NewInterval(5, 9), Interval{}, false},
		{"negative disjoint", NewInterval(-10, -6), NewInterval(-5, 0), Interval{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)

			// Intersection is symmetric.
			rev, revOK := tt.b.Intersection(tt.a)
			assert.Equal(t, ok, revOK)
			assert.Equal(t, got, rev)
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	outer := NewInterval(-5, 5)
	assert.True(t, outer.Contains(outer))
	assert.True(t, outer.Contains(NewInterval(-5, 0)))
	assert.True(t, outer.Contains(NewInterval(2, 2)))
	assert.False(t, outer.Contains(NewInterval(-6, 0)))
	assert.False(t, outer.Contains(NewInterval(0, 6)))
	assert.False(t, NewInterval(0, 0).Contains(outer))
}

// TestInterval_SplitAround verifies the left/right remainders and the
// empty cases.
func TestInterval_SplitAround(t *testing.T) {
	tests := []struct {
		name  string
		i     Interval
		other Interval
		want  []Interval
	}{
		{"middle", NewInterval(0, 10), NewInterval(4, 6), []Interval{NewInterval(0, 3), NewInterval(7, 10)}},
		{"left edge", NewInterval(0, 10), NewInterval(-5, 2), []Interval{NewInterval(3, 10)}},
		{"right edge", NewInterval(0, 10), NewInterval(8, 20), []Interval{NewInterval(0, 7)}},
		{"equal", NewInterval(0, 10), NewInterval(0, 10), nil},
		{"covered", NewInterval(2, 3), NewInterval(0, 10), nil},
		{"disjoint", NewInterval(0, 3), NewInterval(5, 10), nil},
		{"single point hole", NewInterval(0, 2), NewInterval(1, 1), []Interval{NewInterval(0, 0), NewInterval(2, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.i.SplitAround(tt.other))
		})
	}
}

func TestInterval_Len(t *testing.T) {
	assert.Equal(t, int64(1), NewInterval(7, 7).Len())
	assert.Equal(t, int64(101), NewInterval(-50, 50).Len())
}

func TestNewInterval_PanicsOnInvertedBounds(t *testing.T) {
	assert.Panics(t, func() { NewInterval(3, 2) })
}

func TestInterval_String(t *testing.T) {
	assert.Equal(t, "-3..12", NewInterval(-3, 12).String())
}
