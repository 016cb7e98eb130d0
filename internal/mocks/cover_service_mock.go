package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/images"
)

// MockCoverService is a mock type for the images.CoverService type
type MockCoverService struct {
	mock.Mock
}

func (_m *MockCoverService) GenerateCover(ctx context.Context, storyID uuid.UUID, title, artStyle string) (string, error) {
	ret := _m.Called(ctx, storyID, title, artStyle)
	return ret.Get(0).(string), ret.Error(1)
}

// NewMockCoverService creates a new instance of MockCoverService and registers
// the testing interface on the mock.
func NewMockCoverService(t interface {
	mock.TestingT
	Helper()
}) *MockCoverService {
	m := &MockCoverService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ images.CoverService = (*MockCoverService)(nil)
