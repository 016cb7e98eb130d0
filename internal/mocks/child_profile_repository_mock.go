package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockChildProfileRepository is a mock type for the ChildProfileRepository type
type MockChildProfileRepository struct {
	mock.Mock
}

func (_m *MockChildProfileRepository) Create(ctx context.Context, profile *models.ChildProfile) error {
	ret := _m.Called(ctx, profile)
	return ret.Error(0)
}

func (_m *MockChildProfileRepository) GetByID(ctx context.Context, userID, profileID uuid.UUID) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID, profileID)
	var r0 *models.ChildProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ChildProfile)
	}
	return r0, ret.Error(1)
}

func (_m *MockChildProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ChildProfile, error) {
	ret := _m.Called(ctx, userID)
	var r0 []models.ChildProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.ChildProfile)
	}
	return r0, ret.Error(1)
}

func (_m *MockChildProfileRepository) GetActive(ctx context.Context, userID uuid.UUID) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID)
	var r0 *models.ChildProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ChildProfile)
	}
	return r0, ret.Error(1)
}

func (_m *MockChildProfileRepository) Update(ctx context.Context, userID, profileID uuid.UUID, upd models.ChildProfileUpdate) (*models.ChildProfile, error) {
	ret := _m.Called(ctx, userID, profileID, upd)
	var r0 *models.ChildProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ChildProfile)
	}
	return r0, ret.Error(1)
}

func (_m *MockChildProfileRepository) Delete(ctx context.Context, userID, profileID uuid.UUID) error {
	ret := _m.Called(ctx, userID, profileID)
	return ret.Error(0)
}

func (_m *MockChildProfileRepository) SetActive(ctx context.Context, userID, profileID uuid.UUID) error {
	ret := _m.Called(ctx, userID, profileID)
	return ret.Error(0)
}

// NewMockChildProfileRepository creates a new instance of
// MockChildProfileRepository and registers the testing interface on the mock.
func NewMockChildProfileRepository(t interface {
	mock.TestingT
	Helper()
}) *MockChildProfileRepository {
	m := &MockChildProfileRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.ChildProfileRepository = (*MockChildProfileRepository)(nil)
