package domain

import (
	"cmp"
	"slices"
)

// Merge returns the sorted, disjoint cover of intervals. An interval that
// starts exactly where the running one ends is folded into it, so the
// output never holds two touching intervals. The input is left untouched.
func Merge(intervals IntervalSet) IntervalSet {
	if len(intervals) == 0 {
		return IntervalSet{}
	}

	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})

	merged := IntervalSet{sorted[0]}
	for _, next := range sorted[1:] {
		current := &merged[len(merged)-1]
		if next.Start <= current.End {
			current.End = max(current.End, next.End)
			continue
		}
		merged = append(merged, next)
	}

	return merged
}
