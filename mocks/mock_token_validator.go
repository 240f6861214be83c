package mocks

import (
	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/service"
)

// MockTokenValidator is a mock implementation of service.TokenValidator.
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}
