package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/interfaces"
	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockGenerationRequestRepository is a mock type for the GenerationRequestRepository type
type MockGenerationRequestRepository struct {
	mock.Mock
}

func (_m *MockGenerationRequestRepository) Create(ctx context.Context, req *models.GenerationRequest) error {
	ret := _m.Called(ctx, req)
	return ret.Error(0)
}

func (_m *MockGenerationRequestRepository) GetByID(ctx context.Context, userID, requestID uuid.UUID) (*models.GenerationRequest, error) {
	ret := _m.Called(ctx, userID, requestID)
	var r0 *models.GenerationRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.GenerationRequest)
	}
	return r0, ret.Error(1)
}

func (_m *MockGenerationRequestRepository) HasActiveRequest(ctx context.Context, userID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(bool), ret.Error(1)
}

func (_m *MockGenerationRequestRepository) MarkGenerating(ctx context.Context, requestID uuid.UUID) error {
	ret := _m.Called(ctx, requestID)
	return ret.Error(0)
}

func (_m *MockGenerationRequestRepository) MarkCompleted(ctx context.Context, requestID, storyID uuid.UUID) error {
	ret := _m.Called(ctx, requestID, storyID)
	return ret.Error(0)
}

func (_m *MockGenerationRequestRepository) MarkFailed(ctx context.Context, requestID uuid.UUID, errorMessage string) error {
	ret := _m.Called(ctx, requestID, errorMessage)
	return ret.Error(0)
}

// NewMockGenerationRequestRepository creates a new instance of
// MockGenerationRequestRepository and registers the testing interface on the mock.
func NewMockGenerationRequestRepository(t interface {
	mock.TestingT
	Helper()
}) *MockGenerationRequestRepository {
	m := &MockGenerationRequestRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ interfaces.GenerationRequestRepository = (*MockGenerationRequestRepository)(nil)
