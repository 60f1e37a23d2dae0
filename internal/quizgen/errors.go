package quizgen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrLessonNotFound        = errors.New("lesson content not found")
	ErrInsufficientQuestions = errors.New("insufficient valid questions")
)

// InsufficientError reports how many valid questions were assembled when
// recovery gave up.
type InsufficientError struct {
	Valid  int
	Target int
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient valid questions (%d/%d)", e.Valid, e.Target)
}

func (e *InsufficientError) Is(target error) bool {
	return target == ErrInsufficientQuestions
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
