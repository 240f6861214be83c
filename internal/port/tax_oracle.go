package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fuelbooks/internal/gst"
)

// OracleRequest is the input for an authoritative line tax calculation.
type OracleRequest struct {
	ProductID    uuid.UUID       `json:"product_id"`
	VendorID     uuid.UUID       `json:"vendor_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	PurchaseRate decimal.Decimal `json:"purchase_rate"`
	Discount     decimal.Decimal `json:"discount"`
}

// TaxOracle computes the authoritative tax breakdown of a line. Its result
// supersedes the locally computed one when it is still current.
type TaxOracle interface {
	CalculateLineTax(ctx context.Context, req OracleRequest) (*gst.Breakdown, error)
}
