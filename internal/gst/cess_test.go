package gst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/gst"
)

func TestEditCessAmount_DerivesRate(t *testing.T) {
	item := gst.LineItem{Quantity: d("10"), UnitRate: d("100"), GSTRatePercent: d("18")}
	current, err := gst.ComputeLine(item, gst.IntraState)
	require.NoError(t, err)

	item, b, err := gst.EditCessAmount(item, current, d("12.5"))
	require.NoError(t, err)
	assert.True(t, d("1.25").Equal(item.CessRatePercent))
	assert.True(t, d("12.5").Equal(b.Cess))
	assert.True(t, current.CGST.Equal(b.CGST))
}

func TestEditCessAmount_RateRoundedToTwoPlaces(t *testing.T) {
	item := gst.LineItem{Quantity: d("3"), UnitRate: d("100")}
	item, b, err := gst.EditCessAmount(item, gst.Breakdown{}, d("10"))
	require.NoError(t, err)
	// 10/300*100 = 3.333...
	assert.True(t, d("3.33").Equal(item.CessRatePercent))
	assert.True(t, d("10").Equal(b.Cess))
}

func TestEditCessAmount_ZeroTaxableIsNoOp(t *testing.T) {
	item := gst.LineItem{
		Quantity: d("1"), UnitRate: d("100"), DiscountAmount: d("100"),
		CessRatePercent: d("4"),
	}
	previous := gst.Breakdown{Cess: d("7.77")}

	gotItem, gotB, err := gst.EditCessAmount(item, previous, d("50"))
	require.NoError(t, err)
	assert.True(t, d("4").Equal(gotItem.CessRatePercent))
	assert.True(t, d("7.77").Equal(gotB.Cess))
}

func TestEditCessAmount_Invalid(t *testing.T) {
	item := gst.LineItem{Quantity: d("1"), UnitRate: d("100")}

	_, _, err := gst.EditCessAmount(item, gst.Breakdown{}, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = gst.EditCessAmount(item, gst.Breakdown{}, d("150"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditCessRate_DerivesAmount(t *testing.T) {
	item := gst.LineItem{Quantity: d("4"), UnitRate: d("250.25")}
	item, b, err := gst.EditCessRate(item, gst.Breakdown{}, d("3"))
	require.NoError(t, err)
	// 1001 * 3% = 30.03
	assert.True(t, d("30.03").Equal(b.Cess))
	assert.True(t, d("3").Equal(item.CessRatePercent))
}

func TestEditCessRate_ZeroTaxableIsNoOp(t *testing.T) {
	item := gst.LineItem{CessRatePercent: d("2")}
	previous := gst.Breakdown{Cess: d("1.00")}

	gotItem, gotB, err := gst.EditCessRate(item, previous, d("9"))
	require.NoError(t, err)
	assert.True(t, d("2").Equal(gotItem.CessRatePercent))
	assert.True(t, d("1").Equal(gotB.Cess))
}

func TestEditCessRate_OutOfRange(t *testing.T) {
	item := gst.LineItem{Quantity: d("1"), UnitRate: d("1")}
	_, _, err := gst.EditCessRate(item, gst.Breakdown{}, d("100.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
