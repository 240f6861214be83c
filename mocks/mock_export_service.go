package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/invoicesplit"
	"fuelbooks/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Plan(ctx context.Context, r domain.DateRange) (*invoicesplit.Plan, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicesplit.Plan), args.Error(1)
}

func (m *MockExportService) Run(ctx context.Context, r domain.DateRange) (*service.ExportResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportResult), args.Error(1)
}
