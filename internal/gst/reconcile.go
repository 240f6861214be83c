package gst

import (
	"github.com/shopspring/decimal"
)

// Field names a document-level total that a user can override.
type Field string

const (
	FieldCGST     Field = "cgst"
	FieldSGST     Field = "sgst"
	FieldIGST     Field = "igst"
	FieldCess     Field = "cess"
	FieldDiscount Field = "discount"
)

// Fields lists every overridable field in display order.
var Fields = []Field{FieldCGST, FieldSGST, FieldIGST, FieldCess, FieldDiscount}

// ParseField validates a field name coming from a request.
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", invalid("unknown total field %q", s)
}

// OverrideFlags records which document totals were entered by hand.
// It is a plain value: copy it, change it, pass it back.
type OverrideFlags struct {
	CGST     bool `json:"cgst"`
	SGST     bool `json:"sgst"`
	IGST     bool `json:"igst"`
	Cess     bool `json:"cess"`
	Discount bool `json:"discount"`
}

// Has reports whether f is overridden.
func (o OverrideFlags) Has(f Field) bool {
	switch f {
	case FieldCGST:
		return o.CGST
	case FieldSGST:
		return o.SGST
	case FieldIGST:
		return o.IGST
	case FieldCess:
		return o.Cess
	case FieldDiscount:
		return o.Discount
	}
	return false
}

// Set returns a copy with f marked as overridden.
func (o OverrideFlags) Set(f Field) OverrideFlags {
	return o.with(f, true)
}

// Clear returns a copy with f back under automatic aggregation.
func (o OverrideFlags) Clear(f Field) OverrideFlags {
	return o.with(f, false)
}

func (o OverrideFlags) with(f Field, v bool) OverrideFlags {
	switch f {
	case FieldCGST:
		o.CGST = v
	case FieldSGST:
		o.SGST = v
	case FieldIGST:
		o.IGST = v
	case FieldCess:
		o.Cess = v
	case FieldDiscount:
		o.Discount = v
	}
	return o
}

// Line is a line item together with its current breakdown. The breakdown
// may differ from ComputeLine's output after a reverse cess edit.
type Line struct {
	Item LineItem  `json:"item"`
	Tax  Breakdown `json:"tax"`
}

// ComputeLines computes the breakdown of every item.
func ComputeLines(items []LineItem, j Jurisdiction) ([]Line, error) {
	lines := make([]Line, 0, len(items))
	for i := range items {
		b, err := ComputeLine(items[i], j)
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{Item: items[i], Tax: b})
	}
	return lines, nil
}

// DocumentTotals are the aggregated purchase-order amounts.
type DocumentTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Taxable    decimal.Decimal `json:"taxable_amount"`
	CGST       decimal.Decimal `json:"cgst"`
	SGST       decimal.Decimal `json:"sgst"`
	IGST       decimal.Decimal `json:"igst"`
	Cess       decimal.Decimal `json:"cess"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Get returns the value of an overridable field.
func (t DocumentTotals) Get(f Field) decimal.Decimal {
	switch f {
	case FieldCGST:
		return t.CGST
	case FieldSGST:
		return t.SGST
	case FieldIGST:
		return t.IGST
	case FieldCess:
		return t.Cess
	case FieldDiscount:
		return t.Discount
	}
	return decimal.Zero
}

func (t *DocumentTotals) set(f Field, v decimal.Decimal) {
	switch f {
	case FieldCGST:
		t.CGST = v
	case FieldSGST:
		t.SGST = v
	case FieldIGST:
		t.IGST = v
	case FieldCess:
		t.Cess = v
	case FieldDiscount:
		t.Discount = v
	}
}

// Equal compares every amount by value.
func (t DocumentTotals) Equal(o DocumentTotals) bool {
	return t.Subtotal.Equal(o.Subtotal) && t.Discount.Equal(o.Discount) &&
		t.Taxable.Equal(o.Taxable) && t.CGST.Equal(o.CGST) && t.SGST.Equal(o.SGST) &&
		t.IGST.Equal(o.IGST) && t.Cess.Equal(o.Cess) && t.GrandTotal.Equal(o.GrandTotal)
}

// Reconcile aggregates lines into document totals. A field whose override
// flag is set keeps its value from current; every other field is the
// rounded sum of the already-rounded line values. It never fails.
func Reconcile(lines []Line, overrides OverrideFlags, current DocumentTotals) DocumentTotals {
	var sums DocumentTotals
	subtotal := decimal.Zero
	for i := range lines {
		l := &lines[i]
		subtotal = subtotal.Add(l.Item.LineTotal())
		sums.CGST = sums.CGST.Add(l.Tax.CGST)
		sums.SGST = sums.SGST.Add(l.Tax.SGST)
		sums.IGST = sums.IGST.Add(l.Tax.IGST)
		sums.Cess = sums.Cess.Add(l.Tax.Cess)
		sums.Discount = sums.Discount.Add(l.Item.DiscountAmount)
	}

	out := DocumentTotals{Subtotal: subtotal.Round(moneyPlaces)}
	for _, f := range Fields {
		if overrides.Has(f) {
			out.set(f, current.Get(f))
			continue
		}
		out.set(f, sums.Get(f).Round(moneyPlaces))
	}
	return withGrandTotal(out)
}

// EditField records a manual edit of a document-level total: the value is
// stored, the field is flagged as overridden and the grand total follows.
func EditField(current DocumentTotals, overrides OverrideFlags, f Field, value decimal.Decimal) (DocumentTotals, OverrideFlags, error) {
	if _, err := ParseField(string(f)); err != nil {
		return current, overrides, err
	}
	if value.IsNegative() {
		return current, overrides, invalid("%s must not be negative (got %s)", f, value)
	}
	current.set(f, value.Round(moneyPlaces))
	return withGrandTotal(current), overrides.Set(f), nil
}

func withGrandTotal(t DocumentTotals) DocumentTotals {
	t.Taxable = decimal.Max(decimal.Zero, t.Subtotal.Sub(t.Discount))
	t.GrandTotal = t.Taxable.Add(t.CGST).Add(t.SGST).Add(t.IGST).Add(t.Cess)
	return t
}
