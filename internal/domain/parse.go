package domain

import "fmt"

// RawLog is a flat enter/leave sequence: positions (0,1), (2,3), ... form
// the presence intervals.
type RawLog []Timestamp

// ParseIntervals pairs up the log entries in order. Pairs whose leave
// precedes their enter are rejected rather than silently dropped.
func ParseIntervals(log RawLog) (IntervalSet, error) {
	if len(log)%2 != 0 {
		return nil, fmt.Errorf("%w: presence log has odd length %d", ErrInvalidInput, len(log))
	}

	intervals := make(IntervalSet, 0, len(log)/2)
	for i := 0; i < len(log); i += 2 {
		interval, err := NewInterval(log[i], log[i+1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i/2, err)
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}
