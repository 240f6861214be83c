package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/gst"
	"fuelbooks/internal/service"
)

// MockPurchaseOrderService is a mock implementation of service.PurchaseOrderService.
type MockPurchaseOrderService struct {
	mock.Mock
}

func (m *MockPurchaseOrderService) ResolveJurisdiction(input service.JurisdictionInput) (gst.Jurisdiction, error) {
	args := m.Called(input)
	return args.Get(0).(gst.Jurisdiction), args.Error(1)
}

func (m *MockPurchaseOrderService) ComputeLine(ctx context.Context, input service.ComputeLineInput) (*service.LineResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LineResult), args.Error(1)
}

func (m *MockPurchaseOrderService) EditCess(ctx context.Context, input service.EditCessInput) (*service.LineResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LineResult), args.Error(1)
}

func (m *MockPurchaseOrderService) Recalculate(ctx context.Context, input service.RecalculateInput) (*service.DocumentResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentResult), args.Error(1)
}

func (m *MockPurchaseOrderService) EditTotal(ctx context.Context, input service.EditTotalInput) (*service.DocumentResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentResult), args.Error(1)
}

func (m *MockPurchaseOrderService) ResetOverride(ctx context.Context, input service.ResetOverrideInput) (*service.DocumentResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentResult), args.Error(1)
}
