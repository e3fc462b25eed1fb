package storage

import (
	"context"

	"github.com/flightbase/flightbase/internal/models"
)

// UserStorage defines interface for user account persistence
type UserStorage interface {
	// CreateUser stores a new user
	// Returns ErrUserAlreadyExists if username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
