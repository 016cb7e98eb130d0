package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/ai"
)

// MockAIClient is a mock type for the ai.Client type
type MockAIClient struct {
	mock.Mock
}

func (_m *MockAIClient) GenerateText(ctx context.Context, userID string, systemPrompt string, userInput string, params ai.GenerationParams) (string, ai.UsageInfo, error) {
	ret := _m.Called(ctx, userID, systemPrompt, userInput, params)
	return ret.Get(0).(string), ret.Get(1).(ai.UsageInfo), ret.Error(2)
}

// NewMockAIClient creates a new instance of MockAIClient and registers the
// testing interface on the mock.
func NewMockAIClient(t interface {
	mock.TestingT
	Helper()
}) *MockAIClient {
	m := &MockAIClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ ai.Client = (*MockAIClient)(nil)
