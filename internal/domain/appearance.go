package domain

import "fmt"

// Record holds the three logs of one lesson: the bounding window and the
// presence logs of both parties.
type Record struct {
	Lesson []Timestamp
	Pupil  RawLog
	Tutor  RawLog
}

// Presence is the intermediate state of an appearance computation, kept for
// reporting.
type Presence struct {
	Window Interval
	Pupil  IntervalSet
	Tutor  IntervalSet
}

// Overlap is the time both parties spent together inside the window.
func (p Presence) Overlap() Timestamp {
	return Overlap(p.Pupil, p.Tutor)
}

// Resolve runs the record through parse, clip and merge.
func (r Record) Resolve() (Presence, error) {
	window, err := NewLessonWindow(r.Lesson)
	if err != nil {
		return Presence{}, err
	}

	pupil, err := ParseIntervals(r.Pupil)
	if err != nil {
		return Presence{}, fmt.Errorf("pupil: %w", err)
	}

	tutor, err := ParseIntervals(r.Tutor)
	if err != nil {
		return Presence{}, fmt.Errorf("tutor: %w", err)
	}

	return Presence{
		Window: window,
		Pupil:  Merge(Clip(pupil, window)),
		Tutor:  Merge(Clip(tutor, window)),
	}, nil
}

// Appearance returns the total time pupil and tutor were both present
// during the lesson.
func Appearance(record Record) (Timestamp, error) {
	presence, err := record.Resolve()
	if err != nil {
		return 0, err
	}

	return presence.Overlap(), nil
}
