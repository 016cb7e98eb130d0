package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockChildProfileService is a mock type for the service.ChildProfileService type
type MockChildProfileService struct {
	mock.Mock
}

func (_m *MockChildProfileService) Create(ctx context.Context, userID uuid.UUID, profile *models.ChildProfile) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID, profile)

	var out *models.ChildProfile
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.ChildProfile)
	}
	return out, ret.Error(1)
}

func (_m *MockChildProfileService) Get(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID, profileID)

	var out *models.ChildProfile
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.ChildProfile)
	}
	return out, ret.Error(1)
}

func (_m *MockChildProfileService) List(ctx context.Context, userID uuid.UUID) ([]models.ChildProfile, error) {
	ret := _m.Called(ctx, userID)

	var out []models.ChildProfile
	if ret.Get(0) != nil {
		out = ret.Get(0).([]models.ChildProfile)
	}
	return out, ret.Error(1)
}

func (_m *MockChildProfileService) GetActive(ctx context.Context, userID uuid.UUID) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID)

	var out *models.ChildProfile
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.ChildProfile)
	}
	return out, ret.Error(1)
}

func (_m *MockChildProfileService) Update(ctx context.Context, userID, profileID uuid.UUID, upd models.ChildProfileUpdate) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID, profileID, upd)

	var out *models.ChildProfile
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.ChildProfile)
	}
	return out, ret.Error(1)
}

func (_m *MockChildProfileService) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	ret := _m.Called(ctx, userID, profileID)
	return ret.Error(0)
}

func (_m *MockChildProfileService) SetActive(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID, profileID)

	var out *models.ChildProfile
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.ChildProfile)
	}
	return out, ret.Error(1)
}

// NewMockChildProfileService creates a new instance of MockChildProfileService
// and registers the testing interface on the mock.
func NewMockChildProfileService(t interface {
	mock.TestingT
	Helper()
}) *MockChildProfileService {
	m := &MockChildProfileService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}
