package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockGenerationService is a mock type for the service.GenerationService type
type MockGenerationService struct {
	mock.Mock
}

func (_m *MockGenerationService) Submit(ctx context.Context, userID uuid.UUID, req *models.GenerationRequest) (*models.GenerationRequest, error) {
	ret := _m.Called(ctx, userID, req)

	var out *models.GenerationRequest
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.GenerationRequest)
	}
	return out, ret.Error(1)
}

func (_m *MockGenerationService) Status(ctx context.Context, userID, requestID uuid.UUID) (*models.GenerationRequest, error) {
	ret := _m.Called(ctx, userID, requestID)

	var out *models.GenerationRequest
	if ret.Get(0) != nil {
		out = ret.Get(0).(*models.GenerationRequest)
	}
	return out, ret.Error(1)
}

func (_m *MockGenerationService) Shutdown(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

// NewMockGenerationService creates a new instance of MockGenerationService and
// registers the testing interface on the mock.
func NewMockGenerationService(t interface {
	mock.TestingT
	Helper()
}) *MockGenerationService {
	m := &MockGenerationService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}
