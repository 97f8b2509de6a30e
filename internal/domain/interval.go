package domain

import "fmt"

// Timestamp is an opaque point in time. Only ordering and subtraction are
// meaningful.
type Timestamp = int64

// Interval spans [Start, End). Start == End is a valid zero-length interval.
type Interval struct {
	Start Timestamp
	End   Timestamp
}

func NewInterval(start, end Timestamp) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: start %d is after end %d", ErrMalformedInterval, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

func (i Interval) Len() Timestamp {
	return i.End - i.Start
}

// Intersect returns the common part of i and other. The result is reported
// only when it is non-empty, so intervals that merely touch do not intersect.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	start := max(i.Start, other.Start)
	end := min(i.End, other.End)
	if start < end {
		return Interval{Start: start, End: end}, true
	}

	return Interval{}, false
}

type IntervalSet []Interval

func (s IntervalSet) TotalLength() Timestamp {
	var total Timestamp
	for _, interval := range s {
		total += interval.Len()
	}

	return total
}

// NewLessonWindow builds the bounding window from exactly two timestamps.
func NewLessonWindow(bounds []Timestamp) (Interval, error) {
	if len(bounds) != 2 {
		return Interval{}, fmt.Errorf("%w: lesson needs exactly 2 timestamps, got %d", ErrInvalidInput, len(bounds))
	}

	window, err := NewInterval(bounds[0], bounds[1])
	if err != nil {
		return Interval{}, fmt.Errorf("lesson window: %w", err)
	}

	return window, nil
}
