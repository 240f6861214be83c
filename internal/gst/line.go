// Package gst computes GST line breakdowns and reconciles them into
// purchase-order totals. Everything here is pure: no I/O, no shared state.
package gst

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fuelbooks/internal/domain"
)

const moneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// LineItem is one editable purchase line.
type LineItem struct {
	Quantity        decimal.Decimal `json:"quantity"`
	UnitRate        decimal.Decimal `json:"unit_rate"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	GSTRatePercent  decimal.Decimal `json:"gst_rate_percent"`
	CessRatePercent decimal.Decimal `json:"cess_rate_percent"`
}

// LineTotal is quantity × unit rate, unrounded.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitRate)
}

// TaxableAmount is the line total less discount, floored at zero.
func (l LineItem) TaxableAmount() decimal.Decimal {
	return decimal.Max(decimal.Zero, l.LineTotal().Sub(l.DiscountAmount))
}

// Validate rejects negative amounts and percentages outside [0,100].
func (l LineItem) Validate() error {
	switch {
	case l.Quantity.IsNegative():
		return invalid("quantity must not be negative (got %s)", l.Quantity)
	case l.UnitRate.IsNegative():
		return invalid("unit rate must not be negative (got %s)", l.UnitRate)
	case l.DiscountAmount.IsNegative():
		return invalid("discount must not be negative (got %s)", l.DiscountAmount)
	}
	if err := validatePercent("gst rate", l.GSTRatePercent); err != nil {
		return err
	}
	return validatePercent("cess rate", l.CessRatePercent)
}

// Breakdown holds the per-line tax amounts, each rounded to paise on its own.
type Breakdown struct {
	CGST decimal.Decimal `json:"cgst_amount"`
	SGST decimal.Decimal `json:"sgst_amount"`
	IGST decimal.Decimal `json:"igst_amount"`
	Cess decimal.Decimal `json:"cess_amount"`
}

// TotalTax sums the four components.
func (b Breakdown) TotalTax() decimal.Decimal {
	return b.CGST.Add(b.SGST).Add(b.IGST).Add(b.Cess)
}

// Equal compares component-wise by value.
func (b Breakdown) Equal(o Breakdown) bool {
	return b.CGST.Equal(o.CGST) && b.SGST.Equal(o.SGST) && b.IGST.Equal(o.IGST) && b.Cess.Equal(o.Cess)
}

// ComputeLine derives the tax breakdown of a single line.
//
// Intra-state lines split the GST amount in half and round each half
// independently, so CGST+SGST may differ from the rounded GST amount by one
// paisa. Inter-state lines carry the whole amount as IGST.
func ComputeLine(item LineItem, j Jurisdiction) (Breakdown, error) {
	if err := item.Validate(); err != nil {
		return Breakdown{}, err
	}
	taxable := item.TaxableAmount()
	gstAmount := percentOf(taxable, item.GSTRatePercent)

	b := Breakdown{
		CGST: decimal.Zero,
		SGST: decimal.Zero,
		IGST: decimal.Zero,
		Cess: percentOf(taxable, item.CessRatePercent).Round(moneyPlaces),
	}
	switch j {
	case IntraState:
		half := gstAmount.Div(two)
		b.CGST = half.Round(moneyPlaces)
		b.SGST = half.Round(moneyPlaces)
	case InterState:
		b.IGST = gstAmount.Round(moneyPlaces)
	default:
		return Breakdown{}, invalid("unknown jurisdiction %q", j)
	}
	return b, nil
}

func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

func validatePercent(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(hundred) {
		return invalid("%s must be between 0 and 100 (got %s)", name, v)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
