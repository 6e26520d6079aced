// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"enroll/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on the users table.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// EnsureSchema creates the users table if it does not exist yet.
	EnsureSchema(ctx context.Context) error

	// FindByEmail retrieves a user by exact email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByEmailAndCode retrieves a user whose email and confirmation code both match exactly.
	FindByEmailAndCode(ctx context.Context, email, code string) (*entity.User, error)

	// FindByIdentifier retrieves the first user whose email or username equals identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.User, error)

	// FindIDByUsername resolves a username to the first matching user ID.
	FindIDByUsername(ctx context.Context, username string) (int64, error)

	// Create persists a new user and sets its store-assigned ID.
	Create(ctx context.Context, user *entity.User) error

	// MarkConfirmed sets the confirmation flag for every row with the given email.
	MarkConfirmed(ctx context.Context, email string) error
}
