package domain

import (
	"fmt"
	"strings"
	"time"
)

type LessonID string

type Lesson struct {
	ID        LessonID
	Name      string
	Record    Record
	Expected  *int64
	CreatedAt time.Time
}

func (l Lesson) Validate() error {
	if strings.TrimSpace(string(l.ID)) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := l.Record.Resolve(); err != nil {
		return fmt.Errorf("lesson %s: %w", l.ID, err)
	}

	return nil
}
