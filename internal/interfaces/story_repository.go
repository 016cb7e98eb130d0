package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// StoryRepository defines the interface for story persistence.
// Single-story methods are owner-scoped; a story belonging to another user
// yields models.ErrNotFound.
type StoryRepository interface {
	// Create inserts a new story and fills in its ID and timestamps.
	Create(ctx context.Context, story *models.Story) error

	// GetByID retrieves a story owned by userID.
	GetByID(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error)

	// ListByUser returns all stories of a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Story, error)

	// ListFavorites returns the user's favorite stories, newest first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Story, error)

	// Update applies a partial update (word count already recomputed by the
	// caller when content changes) and returns the updated story.
	Update(ctx context.Context, userID, storyID uuid.UUID, upd models.StoryUpdate, wordCount *int) (*models.Story, error)

	// Delete removes a story owned by userID.
	Delete(ctx context.Context, userID, storyID uuid.UUID) error

	// ToggleFavorite atomically flips is_favorite and returns the updated story.
	ToggleFavorite(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error)

	// MarkAsRead sets last_read_at to now only if it is currently NULL, then
	// returns the story. Later calls keep the first timestamp.
	MarkAsRead(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error)

	// SetCoverImageURL stores the illustration URL for a story.
	SetCoverImageURL(ctx context.Context, userID, storyID uuid.UUID, url string) error
}
