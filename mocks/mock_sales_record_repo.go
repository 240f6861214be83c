package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/domain"
)

// MockSalesRecordRepo is a mock implementation of port.SalesRecordRepository.
type MockSalesRecordRepo struct {
	mock.Mock
}

func (m *MockSalesRecordRepo) Create(ctx context.Context, record *domain.SalesRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
