package domain

// Clip restricts every interval to limit and drops the ones left empty.
// Input order is preserved.
func Clip(intervals IntervalSet, limit Interval) IntervalSet {
	clipped := make(IntervalSet, 0, len(intervals))
	for _, interval := range intervals {
		if part, ok := interval.Intersect(limit); ok {
			clipped = append(clipped, part)
		}
	}

	return clipped
}
