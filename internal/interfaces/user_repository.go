package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// UserRepository defines the interface for user persistence (PostgreSQL).
type UserRepository interface {
	// CreateUser inserts a new user. Returns models.ErrEmailAlreadyExists on
	// a duplicate email.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email (already lowercased by the
	// caller). Returns models.ErrUserNotFound if the user does not exist.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns models.ErrUserNotFound if the user does not exist.
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
