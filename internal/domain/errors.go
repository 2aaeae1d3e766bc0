package domain

import "errors"

var (
	// ErrSessionNotFound is returned when an interview session id is unknown.
	ErrSessionNotFound = errors.New("interview session not found")
	// ErrSessionCompleted is returned for submissions after the interview finished.
	ErrSessionCompleted = errors.New("interview session already completed")
	// ErrQuestionNotFound indicates a submitted question id is not part of the session's working set.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrLibraryNotFound indicates the backing store holds no question definitions.
	ErrLibraryNotFound = errors.New("question library not found")
	// ErrInvalidLibrary indicates the question library failed structural validation.
	ErrInvalidLibrary = errors.New("invalid question library")
	// ErrUnknownJobType indicates the session context names an unsupported job type.
	ErrUnknownJobType = errors.New("unknown job type")
)
