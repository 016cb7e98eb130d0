package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RKBattleSLoth/DreamWeaver/internal/mocks"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

func TestProfileCreate_Validation(t *testing.T) {
	svc := NewChildProfileService(mocks.NewMockChildProfileRepository(t), zap.NewNop())
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, &models.ChildProfile{Name: "   "})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	badLevel := "fluent"
	_, err = svc.Create(context.Background(), userID, &models.ChildProfile{Name: "Mia", ReadingLevel: &badLevel})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	badAge := 42
	_, err = svc.Create(context.Background(), userID, &models.ChildProfile{Name: "Mia", Age: &badAge})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestProfileCreate_SetsOwner(t *testing.T) {
	profileRepo := mocks.NewMockChildProfileRepository(t)
	svc := NewChildProfileService(profileRepo, zap.NewNop())
	userID := uuid.New()

	profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.ChildProfile) bool {
		return p.UserID == userID && p.Name == "Mia"
	})).Return(nil).Once()

	_, err := svc.Create(context.Background(), userID, &models.ChildProfile{Name: " Mia "})
	require.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestProfileUpdate_Validation(t *testing.T) {
	svc := NewChildProfileService(mocks.NewMockChildProfileRepository(t), zap.NewNop())
	userID, profileID := uuid.New(), uuid.New()

	empty := "  "
	_, err := svc.Update(context.Background(), userID, profileID, models.ChildProfileUpdate{Name: &empty})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	badLevel := "expert"
	_, err = svc.Update(context.Background(), userID, profileID, models.ChildProfileUpdate{ReadingLevel: &badLevel})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestProfileSetActive_ReturnsUpdatedProfile(t *testing.T) {
	profileRepo := mocks.NewMockChildProfileRepository(t)
	svc := NewChildProfileService(profileRepo, zap.NewNop())
	userID, profileID := uuid.New(), uuid.New()

	profileRepo.On("SetActive", mock.Anything, userID, profileID).Return(nil).Once()
	profileRepo.On("GetByID", mock.Anything, userID, profileID).
		Return(&models.ChildProfile{ID: profileID, IsActive: true}, nil).Once()

	profile, err := svc.SetActive(context.Background(), userID, profileID)
	require.NoError(t, err)
	assert.True(t, profile.IsActive)
	profileRepo.AssertExpectations(t)
}

func TestProfileSetActive_NotOwned(t *testing.T) {
	profileRepo := mocks.NewMockChildProfileRepository(t)
	svc := NewChildProfileService(profileRepo, zap.NewNop())
	userID, profileID := uuid.New(), uuid.New()

	profileRepo.On("SetActive", mock.Anything, userID, profileID).
		Return(models.ErrNotFound).Once()

	_, err := svc.SetActive(context.Background(), userID, profileID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
