package interfaces

import (
	"context"

	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// TokenRepository defines the interface for token persistence (Redis).
// Tokens are stored as AccessUUID/RefreshUUID -> UserID with TTLs matching
// the token lifetimes; a token missing from the store is revoked.
type TokenRepository interface {
	// SetToken stores the access and refresh UUIDs of a token pair.
	SetToken(ctx context.Context, userID uuid.UUID, td *models.TokenDetails) error

	// DeleteTokens removes the given token UUIDs (either may be empty).
	// Returns the number of keys deleted.
	DeleteTokens(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) (int64, error)

	// GetUserIDByAccessUUID returns the UserID for a live access token UUID.
	// Returns models.ErrTokenNotFound if missing or expired.
	GetUserIDByAccessUUID(ctx context.Context, accessUUID string) (uuid.UUID, error)

	// GetUserIDByRefreshUUID returns the UserID for a live refresh token UUID.
	// Returns models.ErrTokenNotFound if missing or expired.
	GetUserIDByRefreshUUID(ctx context.Context, refreshUUID string) (uuid.UUID, error)
}
