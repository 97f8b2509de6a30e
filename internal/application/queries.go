package application

import "github.com/bnema/lesson-appearance/internal/domain"

type Report struct {
	Lesson       domain.Lesson
	Overlap      int64
	WindowLength int64
	PupilPresent int64
	TutorPresent int64
}

// Attendance is the share of the lesson window both parties were present,
// in the range [0, 1].
func (r Report) Attendance() float64 {
	if r.WindowLength <= 0 {
		return 0
	}

	return float64(r.Overlap) / float64(r.WindowLength)
}

// Matches reports whether the computed overlap agrees with the lesson's
// expected answer. Lessons without an expected answer always match.
func (r Report) Matches() bool {
	if r.Lesson.Expected == nil {
		return true
	}

	return *r.Lesson.Expected == r.Overlap
}

type Mismatch struct {
	LessonID domain.LessonID
	Name     string
	Expected int64
	Got      int64
}

type VerifyResult struct {
	Reports    []Report
	Passed     int
	Mismatches []Mismatch
}
