package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedInterval = errors.New("malformed interval")
	ErrLessonNotFound    = errors.New("lesson not found")
)
