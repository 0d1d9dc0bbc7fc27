// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"haven/internal/domain/entity"
	"haven/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserConflict is returned when the username or email is already taken.
	ErrUserConflict = errors.New("username or email already registered")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves every user whose ID is in ids. Unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindFirst returns the earliest registered user.
	FindFirst(ctx context.Context) (*entity.User, error)

	// Create persists a new user. Returns ErrUserConflict on a duplicate username or email.
	Create(ctx context.Context, user *entity.User) error
}
