package application

import "github.com/bnema/lesson-appearance/internal/domain"

type AddLessonCommand struct {
	ID       domain.LessonID
	Name     string
	Record   domain.Record
	Expected *int64
}

type RemoveLessonCommand struct {
	ID domain.LessonID
}
