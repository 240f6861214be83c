package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fuelbooks/internal/gst"
	"fuelbooks/internal/port"
)

// MockTaxOracle is a mock implementation of port.TaxOracle.
type MockTaxOracle struct {
	mock.Mock
}

func (m *MockTaxOracle) CalculateLineTax(ctx context.Context, req port.OracleRequest) (*gst.Breakdown, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gst.Breakdown), args.Error(1)
}
