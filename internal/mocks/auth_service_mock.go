package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/RKBattleSLoth/DreamWeaver/internal/models"
)

// MockAuthService is a mock type for the service.AuthService type
type MockAuthService struct {
	mock.Mock
}

func (_m *MockAuthService) Register(ctx context.Context, email, password, name string) (*models.User, *models.TokenDetails, error) {
	ret := _m.Called(ctx, email, password, name)

	var user *models.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*models.User)
	}
	var td *models.TokenDetails
	if ret.Get(1) != nil {
		td = ret.Get(1).(*models.TokenDetails)
	}
	return user, td, ret.Error(2)
}

func (_m *MockAuthService) Login(ctx context.Context, email, password string) (*models.TokenDetails, error) {
	ret := _m.Called(ctx, email, password)

	var td *models.TokenDetails
	if ret.Get(0) != nil {
		td = ret.Get(0).(*models.TokenDetails)
	}
	return td, ret.Error(1)
}

func (_m *MockAuthService) Logout(ctx context.Context, userID uuid.UUID, accessUUID, refreshUUID string) error {
	ret := _m.Called(ctx, userID, accessUUID, refreshUUID)
	return ret.Error(0)
}

func (_m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenDetails, error) {
	ret := _m.Called(ctx, refreshToken)

	var td *models.TokenDetails
	if ret.Get(0) != nil {
		td = ret.Get(0).(*models.TokenDetails)
	}
	return td, ret.Error(1)
}

func (_m *MockAuthService) VerifyAccessToken(ctx context.Context, token string) (*models.Claims, error) {
	ret := _m.Called(ctx, token)

	var claims *models.Claims
	if ret.Get(0) != nil {
		claims = ret.Get(0).(*models.Claims)
	}
	return claims, ret.Error(1)
}

func (_m *MockAuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	ret := _m.Called(ctx, userID)

	var user *models.User
	if ret.Get(0) != nil {
		user = ret.Get(0).(*models.User)
	}
	return user, ret.Error(1)
}

// NewMockAuthService creates a new instance of MockAuthService and registers
// the testing interface on the mock.
func NewMockAuthService(t interface {
	mock.TestingT
	Helper()
}) *MockAuthService {
	m := &MockAuthService{}
	m.Mock.Test(t)
	t.Helper()
	return m
}
