package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// ChildProfileRepository defines the interface for child profile persistence.
// Every method that addresses a single profile is scoped by the owning user:
// a profile belonging to another user behaves exactly like a missing one and
// yields models.ErrNotFound.
type ChildProfileRepository interface {
	// Create inserts a new profile and fills in its ID and timestamps.
	Create(ctx context.Context, profile *models.ChildProfile) error

	// GetByID retrieves a profile owned by userID.
	GetByID(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error)

	// ListByUser returns all profiles of a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ChildProfile, error)

	// GetActive returns the user's active profile, models.ErrNotFound if none.
	GetActive(ctx context.Context, userID uuid.UUID) (*models.ChildProfile, error)

	// Update applies a partial update and returns the updated profile.
	Update(ctx context.Context, userID, profileID uuid.UUID, upd models.ChildProfileUpdate) (*models.ChildProfile, error)

	// Delete removes a profile owned by userID.
	Delete(ctx context.Context, userID, profileID uuid.UUID) error

	// SetActive atomically deactivates every profile of the user and
	// activates the given one. Returns models.ErrNotFound (and rolls back)
	// if the profile is not the user's.
	SetActive(ctx context.Context, userID, profileID uuid.UUID) error
}
