package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/service"
)

// MockLineTaxCoordinator is a mock implementation of service.LineTaxCoordinator.
type MockLineTaxCoordinator struct {
	mock.Mock
}

func (m *MockLineTaxCoordinator) Edit(ctx context.Context, lineID uuid.UUID, input service.LineEditInput) (*service.LineTaxState, error) {
	args := m.Called(ctx, lineID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LineTaxState), args.Error(1)
}

func (m *MockLineTaxCoordinator) State(lineID uuid.UUID) (*service.LineTaxState, error) {
	args := m.Called(lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LineTaxState), args.Error(1)
}

func (m *MockLineTaxCoordinator) Forget(lineID uuid.UUID) {
	m.Called(lineID)
}

func (m *MockLineTaxCoordinator) Wait() {
	m.Called()
}
