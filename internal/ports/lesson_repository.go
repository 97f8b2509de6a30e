package ports

import (
	"context"

	"github.com/bnema/lesson-appearance/internal/domain"
)

type LessonRepository interface {
	GetByID(ctx context.Context, id domain.LessonID) (domain.Lesson, error)
	List(ctx context.Context) ([]domain.Lesson, error)
	Save(ctx context.Context, lesson domain.Lesson) error
	Delete(ctx context.Context, id domain.LessonID) error
}
