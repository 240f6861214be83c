package invoicesplit

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fuelbooks/internal/domain"
)

const (
	moneyPlaces    = 2
	quantityPlaces = 3
)

// SplitLine is one exportable invoice line cut from a group.
type SplitLine struct {
	SequenceIndex  int             `json:"sequence_index"`
	Quantity       decimal.Decimal `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	Amount         decimal.Decimal `json:"amount"`
	AdjustmentNote string          `json:"adjustment_note,omitempty"`
}

// UnsplittableError reports a group that has to be invoiced by hand.
type UnsplittableError struct {
	Group  Group
	Reason string
}

func (e *UnsplittableError) Error() string {
	return fmt.Sprintf("%s: %s (%s, total %s)",
		domain.ErrUnsplittableGroup, e.Reason, e.Group.ProductName, e.Group.TotalAmount.StringFixed(moneyPlaces))
}

func (e *UnsplittableError) Unwrap() error {
	return domain.ErrUnsplittableGroup
}

// NeedsSplit reports whether the group total exceeds the threshold.
func NeedsSplit(g Group, threshold decimal.Decimal) bool {
	return g.TotalAmount.GreaterThan(threshold)
}

// Split cuts a group into invoice lines whose amounts add up to the group
// total exactly. A group at or below the threshold comes back as one line.
// Fuel groups are cut by quantity at the average rate; other goods are cut
// into equal amount shares.
func Split(g Group, threshold decimal.Decimal) ([]SplitLine, error) {
	if !threshold.IsPositive() {
		return nil, fmt.Errorf("%w: threshold must be positive (got %s)", domain.ErrInvalidInput, threshold)
	}
	if !NeedsSplit(g, threshold) {
		return []SplitLine{{
			SequenceIndex: 1,
			Quantity:      g.TotalQty,
			Rate:          g.AvgRate().Round(moneyPlaces),
			Amount:        g.TotalAmount,
		}}, nil
	}
	if g.IsFuel {
		return splitByQuantity(g, threshold)
	}
	return splitByAmount(g, threshold), nil
}

// splitByQuantity emits lines of at most floor(threshold/rate) units and
// puts the whole rounding drift on the last line.
func splitByQuantity(g Group, threshold decimal.Decimal) ([]SplitLine, error) {
	rate := g.AvgRate()
	if !rate.IsPositive() {
		return nil, &UnsplittableError{Group: g, Reason: "average rate is zero"}
	}
	maxQty := threshold.Div(rate).Floor()
	if !maxQty.IsPositive() {
		return nil, &UnsplittableError{Group: g, Reason: "a single unit costs more than the threshold"}
	}

	displayRate := rate.Round(moneyPlaces)
	remaining := g.TotalQty
	sum := decimal.Zero
	var lines []SplitLine
	for remaining.IsPositive() {
		qty := decimal.Min(remaining, maxQty)
		amount := qty.Mul(rate).Round(moneyPlaces)
		lines = append(lines, SplitLine{
			SequenceIndex: len(lines) + 1,
			Quantity:      qty,
			Rate:          displayRate,
			Amount:        amount,
		})
		sum = sum.Add(amount)
		remaining = remaining.Sub(qty)
	}

	drift := g.TotalAmount.Sub(sum)
	last := &lines[len(lines)-1]
	last.Amount = last.Amount.Add(drift)
	last.AdjustmentNote = "rounding adjustment " + signed(drift)
	return lines, nil
}

// splitByAmount divides the total into ceil(total/threshold) equal shares;
// the last share takes whatever the rounded shares left over. Quantity is
// apportioned by amount and is informational only.
func splitByAmount(g Group, threshold decimal.Decimal) []SplitLine {
	n := g.TotalAmount.Div(threshold).Ceil().IntPart()
	share := g.TotalAmount.Div(decimal.NewFromInt(n)).Round(moneyPlaces)
	rate := g.AvgRate().Round(moneyPlaces)

	lines := make([]SplitLine, 0, n)
	sum := decimal.Zero
	for i := int64(1); i <= n; i++ {
		amount := share
		if i == n {
			amount = g.TotalAmount.Sub(sum)
		}
		lines = append(lines, SplitLine{
			SequenceIndex: int(i),
			Quantity:      g.TotalQty.Mul(amount).Div(g.TotalAmount).Round(quantityPlaces),
			Rate:          rate,
			Amount:        amount,
		})
		sum = sum.Add(amount)
	}
	return lines
}

func signed(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-" + v.Abs().StringFixed(moneyPlaces)
	}
	return "+" + v.StringFixed(moneyPlaces)
}
