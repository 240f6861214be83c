package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/domain"
)

// MockTransactionRepo is a mock implementation of port.TransactionRepository.
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}
