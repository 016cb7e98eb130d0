package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockStoryService is a mock type for the service.StoryService type
type MockStoryService struct {
	mock.Mock
}

func (_m *MockStoryService) Create(ctx context.Context, userID uuid.UUID, story *models.Story) (*models.Story, error) {
	ret := _m.Called(ctx, userID, story)

	var out *models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.Story)
	}
	return out, ret.Error(1)
}

func (_m *MockStoryService) Get(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID)

	var out *models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.Story)
	}
	return out, ret.Error(1)
}

func (_m *MockStoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	ret := _m.Called(ctx, userID)

	var out []models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).([]models.Story)
	}
	return out, ret.Error(1)
}

func (_m *MockStoryService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Story, error) {
	ret := _m.Called(ctx, userID)

	var out []models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).([]models.Story)
	}
	return out, ret.Error(1)
}

func (_m *MockStoryService) Update(ctx context.Context, userID, storyID uuid.UUID, upd models.StoryUpdate) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID, upd)

	var out *models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.Story)
	}
	return out, ret.Error(1)
}

func (_m *MockStoryService) Delete(ctx context.Context, userID, storyID uuid.UUID) error {
	ret := _m.Called(ctx, userID, storyID)
	return ret.Error(0)
}

func (_m *MockStoryService) ToggleFavorite(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID)

	var out *models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.Story)
	}
	return out, ret.Error(1)
}

func (_m *MockStoryService) MarkAsRead(ctx context.Context, userID, storyID uuid.UUID) (*models.Story, error) {
	ret := _m.Called(ctx, userID, storyID)

	var out *models.Story
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.Story)
	}
	return out, ret.Error(1)
}

// NewMockStoryService creates a new instance of MockStoryService and registers
// the testing interface on the mock.
func NewMockStoryService(t interface {
	mock.TestingT
	Helper()
}) *MockStoryService {
	m := &MockStoryService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}
