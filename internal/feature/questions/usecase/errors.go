// Package usecase implements the business logic for the questions feature.
package usecase

import "errors"

var (
	// ErrQuestionNotFound is returned when no question exists with the given ID.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrUserNotFound is returned when the addressed user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotOwner is returned when the requester is authenticated but is not
	// the owner of the question. Callers must keep this distinct from an
	// authentication failure.
	ErrNotOwner = errors.New("not the owner of this question")

	// ErrEmptyAnswer is returned when an answer is submitted without text.
	ErrEmptyAnswer = errors.New("answer text must not be empty")
)
