package gst

import "github.com/shopspring/decimal"

// EditCessAmount applies a user-entered cess amount and derives the cess
// rate from it. While the taxable amount is zero the edit is a no-op and
// the item and breakdown come back exactly as passed in.
func EditCessAmount(item LineItem, current Breakdown, amount decimal.Decimal) (LineItem, Breakdown, error) {
	if err := item.Validate(); err != nil {
		return item, current, err
	}
	if amount.IsNegative() {
		return item, current, invalid("cess amount must not be negative (got %s)", amount)
	}
	taxable := item.TaxableAmount()
	if !taxable.IsPositive() {
		return item, current, nil
	}
	rate := amount.Div(taxable).Mul(hundred).Round(moneyPlaces)
	if rate.GreaterThan(hundred) {
		return item, current, invalid("cess amount %s exceeds taxable amount %s", amount, taxable)
	}
	item.CessRatePercent = rate
	current.Cess = amount.Round(moneyPlaces)
	return item, current, nil
}

// EditCessRate applies a user-entered cess rate and derives the amount.
// Same zero-taxable no-op as EditCessAmount.
func EditCessRate(item LineItem, current Breakdown, rate decimal.Decimal) (LineItem, Breakdown, error) {
	if err := item.Validate(); err != nil {
		return item, current, err
	}
	if err := validatePercent("cess rate", rate); err != nil {
		return item, current, err
	}
	taxable := item.TaxableAmount()
	if !taxable.IsPositive() {
		return item, current, nil
	}
	item.CessRatePercent = rate
	current.Cess = percentOf(taxable, rate).Round(moneyPlaces)
	return item, current, nil
}
