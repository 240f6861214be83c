package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/gst"
	"fuelbooks/internal/logger"
)

// JurisdictionInput selects intra- or inter-state treatment. An explicit
// Jurisdiction wins; otherwise it is resolved from the home state (the
// configured one when empty) and the counterparty's state code or GSTIN.
type JurisdictionInput struct {
	Jurisdiction  *gst.Jurisdiction `json:"jurisdiction,omitempty" swaggertype:"string" enums:"intra_state,inter_state"`
	HomeStateCode string            `json:"home_state_code,omitempty"`
	Counterparty  string            `json:"counterparty,omitempty"`
}

// ComputeLineInput is a single line to tax.
type ComputeLineInput struct {
	JurisdictionInput
	Item gst.LineItem `json:"item"`
}

// EditCessInput is a reverse cess edit. Exactly one of CessAmount and
// CessRate must be set. Current defaults to the computed breakdown.
type EditCessInput struct {
	JurisdictionInput
	Item       gst.LineItem     `json:"item"`
	Current    *gst.Breakdown   `json:"current,omitempty"`
	CessAmount *decimal.Decimal `json:"cess_amount,omitempty" swaggertype:"string"`
	CessRate   *decimal.Decimal `json:"cess_rate_percent,omitempty" swaggertype:"string"`
}

// LineResult is a taxed line.
type LineResult struct {
	Jurisdiction  gst.Jurisdiction `json:"jurisdiction" swaggertype:"string"`
	Item          gst.LineItem     `json:"item"`
	LineTotal     decimal.Decimal  `json:"line_total"`
	TaxableAmount decimal.Decimal  `json:"taxable_amount"`
	Tax           gst.Breakdown    `json:"tax"`
}

// DocumentLine is a purchase-order line. CessAmount carries the result of
// an earlier reverse cess edit so the exact entered amount is kept.
type DocumentLine struct {
	Item       gst.LineItem     `json:"item"`
	CessAmount *decimal.Decimal `json:"cess_amount,omitempty" swaggertype:"string"`
}

// RecalculateInput is a purchase order to re-aggregate.
type RecalculateInput struct {
	JurisdictionInput
	Lines     []DocumentLine     `json:"lines"`
	Overrides gst.OverrideFlags  `json:"overrides"`
	Current   gst.DocumentTotals `json:"current"`
}

// ResetOverrideInput clears one override, or all of them when Field is
// empty, and recalculates.
type ResetOverrideInput struct {
	RecalculateInput
	Field string `json:"field"`
}

// EditTotalInput is a manual edit of one document-level total.
type EditTotalInput struct {
	Totals    gst.DocumentTotals `json:"totals"`
	Overrides gst.OverrideFlags  `json:"overrides"`
	Field     string             `json:"field"`
	Value     decimal.Decimal    `json:"value" swaggertype:"string"`
}

// DocumentResult is the reconciled purchase order.
type DocumentResult struct {
	Jurisdiction gst.Jurisdiction   `json:"jurisdiction,omitempty" swaggertype:"string"`
	Lines        []gst.Line         `json:"lines,omitempty"`
	Totals       gst.DocumentTotals `json:"totals"`
	Overrides    gst.OverrideFlags  `json:"overrides"`
}

// PurchaseOrderService runs the tax calculator and the document reconciler
// for purchase-order screens.
type PurchaseOrderService interface {
	ResolveJurisdiction(input JurisdictionInput) (gst.Jurisdiction, error)
	ComputeLine(ctx context.Context, input ComputeLineInput) (*LineResult, error)
	EditCess(ctx context.Context, input EditCessInput) (*LineResult, error)
	Recalculate(ctx context.Context, input RecalculateInput) (*DocumentResult, error)
	EditTotal(ctx context.Context, input EditTotalInput) (*DocumentResult, error)
	ResetOverride(ctx context.Context, input ResetOverrideInput) (*DocumentResult, error)
}

type purchaseOrderService struct {
	homeStateCode string
	log           *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService implementation.
func NewPurchaseOrderService(homeStateCode string, log *zap.Logger) PurchaseOrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &purchaseOrderService{homeStateCode: homeStateCode, log: log}
}

func (s *purchaseOrderService) ResolveJurisdiction(in JurisdictionInput) (gst.Jurisdiction, error) {
	if in.Jurisdiction != nil {
		switch *in.Jurisdiction {
		case gst.IntraState, gst.InterState:
			return *in.Jurisdiction, nil
		}
		return 0, invalidInput("unknown jurisdiction")
	}
	if in.Counterparty == "" {
		return 0, invalidInput("either jurisdiction or counterparty is required")
	}
	home := in.HomeStateCode
	if home == "" {
		home = s.homeStateCode
	}
	return gst.ResolveJurisdiction(home, in.Counterparty)
}

func (s *purchaseOrderService) ComputeLine(ctx context.Context, input ComputeLineInput) (*LineResult, error) {
	j, err := s.ResolveJurisdiction(input.JurisdictionInput)
	if err != nil {
		return nil, err
	}
	b, err := gst.ComputeLine(input.Item, j)
	if err != nil {
		return nil, err
	}
	return lineResult(j, input.Item, b), nil
}

func (s *purchaseOrderService) EditCess(ctx context.Context, input EditCessInput) (*LineResult, error) {
	if (input.CessAmount == nil) == (input.CessRate == nil) {
		return nil, invalidInput("exactly one of cess_amount and cess_rate_percent is required")
	}
	j, err := s.ResolveJurisdiction(input.JurisdictionInput)
	if err != nil {
		return nil, err
	}

	var current gst.Breakdown
	if input.Current != nil {
		current = *input.Current
	} else if current, err = gst.ComputeLine(input.Item, j); err != nil {
		return nil, err
	}

	var (
		item gst.LineItem
		b    gst.Breakdown
	)
	if input.CessAmount != nil {
		item, b, err = gst.EditCessAmount(input.Item, current, *input.CessAmount)
	} else {
		item, b, err = gst.EditCessRate(input.Item, current, *input.CessRate)
	}
	if err != nil {
		return nil, err
	}
	if !item.TaxableAmount().IsPositive() {
		logger.WithContext(ctx, s.log).Debug("cess edit ignored on zero taxable line")
	}
	return lineResult(j, item, b), nil
}

func (s *purchaseOrderService) Recalculate(ctx context.Context, input RecalculateInput) (*DocumentResult, error) {
	j, err := s.ResolveJurisdiction(input.JurisdictionInput)
	if err != nil {
		return nil, err
	}
	lines, err := s.computeLines(input.Lines, j)
	if err != nil {
		return nil, err
	}
	totals := gst.Reconcile(lines, input.Overrides, input.Current)

	logger.WithContext(ctx, s.log).Debug("purchase order recalculated",
		zap.Int("lines", len(lines)),
		zap.String("jurisdiction", j.String()),
		zap.String("grand_total", totals.GrandTotal.StringFixed(2)),
	)
	return &DocumentResult{
		Jurisdiction: j,
		Lines:        lines,
		Totals:       totals,
		Overrides:    input.Overrides,
	}, nil
}

func (s *purchaseOrderService) computeLines(in []DocumentLine, j gst.Jurisdiction) ([]gst.Line, error) {
	lines := make([]gst.Line, 0, len(in))
	for i := range in {
		item := in[i].Item
		b, err := gst.ComputeLine(item, j)
		if err != nil {
			return nil, err
		}
		if in[i].CessAmount != nil {
			if item, b, err = gst.EditCessAmount(item, b, *in[i].CessAmount); err != nil {
				return nil, err
			}
		}
		lines = append(lines, gst.Line{Item: item, Tax: b})
	}
	return lines, nil
}

func (s *purchaseOrderService) EditTotal(ctx context.Context, input EditTotalInput) (*DocumentResult, error) {
	f, err := gst.ParseField(input.Field)
	if err != nil {
		return nil, err
	}
	totals, overrides, err := gst.EditField(input.Totals, input.Overrides, f, input.Value)
	if err != nil {
		return nil, err
	}
	return &DocumentResult{Totals: totals, Overrides: overrides}, nil
}

func (s *purchaseOrderService) ResetOverride(ctx context.Context, input ResetOverrideInput) (*DocumentResult, error) {
	overrides := gst.OverrideFlags{}
	if input.Field != "" {
		f, err := gst.ParseField(input.Field)
		if err != nil {
			return nil, err
		}
		overrides = input.Overrides.Clear(f)
	}
	in := input.RecalculateInput
	in.Overrides = overrides
	return s.Recalculate(ctx, in)
}

func lineResult(j gst.Jurisdiction, item gst.LineItem, b gst.Breakdown) *LineResult {
	return &LineResult{
		Jurisdiction:  j,
		Item:          item,
		LineTotal:     item.LineTotal(),
		TaxableAmount: item.TaxableAmount(),
		Tax:           b,
	}
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
}
