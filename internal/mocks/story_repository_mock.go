package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockStoryRepository is a mock type for the StoryRepository type
type MockStoryRepository struct {
	mock.Mock
}

func (_m *MockStoryRepository) Create(ctx context.Context, story *models.Story) error {
	ret := _m.Called(ctx, story)
	return ret.Error(0)
}

func (_m *MockStoryRepository) GetByID(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID)
	var r0 *models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Story)
	}
	return r0, ret.Error(1)
}

func (_m *MockStoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Story)
	}
	return r0, ret.Error(1)
}

func (_m *MockStoryRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Story)
	}
	return r0, ret.Error(1)
}

func (_m *MockStoryRepository) Update(ctx context.Context, userID, storyID uuid.UUID, upd models.StoryUpdate, wordCount *int) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID, upd, wordCount)
	var r0 *models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Story)
	}
	return r0, ret.Error(1)
}

func (_m *MockStoryRepository) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	ret := _m.Called(ctx, userID, storyID)
	return ret.Error(0)
}

func (_m *MockStoryRepository) ToggleFavorite(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID)
	var r0 *models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Story)
	}
	return r0, ret.Error(1)
}

func (_m *MockStoryRepository) MarkAsRead(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID)
	var r0 *models.Story
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Story)
	}
	return r0, ret.Error(1)
}

func (_m *MockStoryRepository) SetCoverImageURL(ctx context.Context, userID, storyID uuid.UUID, url string) error {
	ret := _m.Called(ctx, userID, storyID, url)
	return ret.Error(0)
}

// NewMockStoryRepository creates a new instance of MockStoryRepository and
// registers the testing interface on the mock.
func NewMockStoryRepository(t interface {
	mock.TestingT
	Helper()
}) *MockStoryRepository {
	m := &MockStoryRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.StoryRepository = (*MockStoryRepository)(nil)
