package models

import "errors"

var (
	// ErrQuestionNotFound is returned when a question id has no matching record.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrQuizNotFound is returned when a quiz id has no matching record.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrNoQuizzes is returned by the random pick when the store is empty.
	ErrNoQuizzes = errors.New("no quizzes found")
	// ErrNoOtherQuizzes is returned by the random pick when only the excluded quiz exists.
	ErrNoOtherQuizzes = errors.New("no other quizzes found")
)

// ValidationError marks a malformed or incomplete request payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
