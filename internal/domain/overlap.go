package domain

// Overlap sums the intersections of two merged interval sets in a single
// pass. Both inputs must be sorted and disjoint, as produced by Merge.
func Overlap(a, b IntervalSet) Timestamp {
	var total Timestamp

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if part, ok := a[i].Intersect(b[j]); ok {
			total += part.Len()
		}

		// Whichever interval ends first cannot meet anything further on
		// the other side. On equal ends b moves.
		if a[i].End < b[j].End {
			i++
		} else {
			j++
		}
	}

	return total
}
