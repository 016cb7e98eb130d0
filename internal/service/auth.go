package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// AuthService handles user registration, login and token lifecycle.
type AuthService interface {
	// Register creates a new user and issues a token pair.
	Register(ctx context.Context, email, password, name string) (*models.User, *models.TokenDetails, error)
	// Login authenticates a user and issues a token pair.
	Login(ctx context.Context, email, password string) (*models.TokenDetails, error)
	// Logout revokes the given token UUIDs. Missing tokens are not an error.
	Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) error
	// Refresh rotates the token pair based on a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error)
	// VerifyAccessToken validates an access token against the signature,
	// expiry and the revocation store.
	VerifyAccessToken(ctx context.Context, token string) (*models.Claims, error)
	// GetUser returns the user for an authenticated request.
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
