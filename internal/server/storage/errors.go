package storage

import "errors"

// Common storage errors
var (
	// ErrEntityNotFound indicates that the entity row doesn't exist
	ErrEntityNotFound = errors.New("entity not found")

	// ErrAppliedNotFound indicates that no applied mapping exists for a localId
	ErrAppliedNotFound = errors.New("applied mapping not found")

	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")
)
