package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// GenerationRequestRepository defines the interface for generation request
// persistence. Status transitions are compare-and-set: each transition method
// only succeeds if the row is currently in the expected state, so terminal
// rows can never move again.
type GenerationRequestRepository interface {
	// Create inserts a new request in pending state.
	Create(ctx context.Context, req *models.GenerationRequest) error

	// GetByID retrieves a request owned by userID.
	GetByID(ctx context.Context, userID, requestID uuid.UUID) (*models.GenerationRequest, error)

	// HasActiveRequest reports whether the user has a request in pending or
	// generating state.
	HasActiveRequest(ctx context.Context, userID uuid.UUID) (bool, error)

	// MarkGenerating transitions pending -> generating.
	// Returns models.ErrNotFound if the row is missing or not pending.
	MarkGenerating(ctx context.Context, requestID uuid.UUID) error

	// MarkCompleted transitions generating -> completed and records the story.
	// Returns models.ErrNotFound if the row is missing or not generating.
	MarkCompleted(ctx context.Context, requestID, storyID uuid.UUID) error

	// MarkFailed transitions pending|generating -> failed and records the
	// error message. Returns models.ErrNotFound if the row is missing or
	// already terminal.
	MarkFailed(ctx context.Context, requestID uuid.UUID, errorMessage string) error
}
