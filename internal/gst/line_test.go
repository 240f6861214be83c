package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/gst"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dieselLine() gst.LineItem {
	return gst.LineItem{
		Quantity:        d("100"),
		UnitRate:        d("90"),
		DiscountAmount:  d("0"),
		GSTRatePercent:  d("18"),
		CessRatePercent: d("0"),
	}
}

func TestComputeLine_IntraState(t *testing.T) {
	b, err := gst.ComputeLine(dieselLine(), gst.IntraState)
	require.NoError(t, err)

	assert.True(t, d("9000").Equal(dieselLine().TaxableAmount()))
	assert.True(t, d("810").Equal(b.CGST))
	assert.True(t, d("810").Equal(b.SGST))
	assert.True(t, b.IGST.IsZero())
	assert.True(t, b.Cess.IsZero())
}

func TestComputeLine_InterState(t *testing.T) {
	b, err := gst.ComputeLine(dieselLine(), gst.InterState)
	require.NoError(t, err)

	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, d("1620").Equal(b.IGST))
}

func TestComputeLine_HalvesRoundedIndependently(t *testing.T) {
	// 10.10 @ 5% = 0.505; each half 0.2525 rounds to 0.25 while the whole rounds to 0.51.
	item := gst.LineItem{Quantity: d("1"), UnitRate: d("10.10"), GSTRatePercent: d("5")}

	intra, err := gst.ComputeLine(item, gst.IntraState)
	require.NoError(t, err)
	assert.True(t, d("0.25").Equal(intra.CGST))
	assert.True(t, d("0.25").Equal(intra.SGST))

	inter, err := gst.ComputeLine(item, gst.InterState)
	require.NoError(t, err)
	assert.True(t, d("0.51").Equal(inter.IGST))

	diff := inter.IGST.Sub(intra.CGST.Add(intra.SGST)).Abs()
	assert.True(t, diff.LessThanOrEqual(d("0.01")))
}

func TestComputeLine_Cess(t *testing.T) {
	item := dieselLine()
	item.DiscountAmount = d("500")
	item.CessRatePercent = d("1.5")

	b, err := gst.ComputeLine(item, gst.IntraState)
	require.NoError(t, err)
	// taxable 8500
	assert.True(t, d("127.5").Equal(b.Cess))
	assert.True(t, d("765").Equal(b.CGST))
}

func TestComputeLine_DiscountFloorsTaxable(t *testing.T) {
	item := gst.LineItem{
		Quantity: d("2"), UnitRate: d("50"), DiscountAmount: d("150"),
		GSTRatePercent: d("28"), CessRatePercent: d("12"),
	}
	assert.True(t, item.TaxableAmount().IsZero())

	for _, j := range []gst.Jurisdiction{gst.IntraState, gst.InterState} {
		b, err := gst.ComputeLine(item, j)
		require.NoError(t, err)
		assert.True(t, b.TotalTax().IsZero(), j.String())
		assert.False(t, b.CGST.IsNegative())
		assert.False(t, b.IGST.IsNegative())
	}
}

func TestComputeLine_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		edit func(*gst.LineItem)
	}{
		{"negative quantity", func(l *gst.LineItem) { l.Quantity = d("-1") }},
		{"negative rate", func(l *gst.LineItem) { l.UnitRate = d("-0.01") }},
		{"negative discount", func(l *gst.LineItem) { l.DiscountAmount = d("-5") }},
		{"gst above 100", func(l *gst.LineItem) { l.GSTRatePercent = d("100.01") }},
		{"negative gst", func(l *gst.LineItem) { l.GSTRatePercent = d("-1") }},
		{"cess above 100", func(l *gst.LineItem) { l.CessRatePercent = d("101") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := dieselLine()
			tt.edit(&item)
			_, err := gst.ComputeLine(item, gst.IntraState)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestComputeLine_UnknownJurisdiction(t *testing.T) {
	_, err := gst.ComputeLine(dieselLine(), gst.Jurisdiction(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeLine_JurisdictionExclusive(t *testing.T) {
	rates := []string{"0", "5", "12", "18", "28"}
	qtys := []string{"0", "1", "7.5", "333.333"}
	for _, r := range rates {
		for _, q := range qtys {
			item := gst.LineItem{Quantity: d(q), UnitRate: d("91.37"), GSTRatePercent: d(r)}
			intra, err := gst.ComputeLine(item, gst.IntraState)
			require.NoError(t, err)
			assert.True(t, intra.IGST.IsZero())
			assert.True(t, intra.CGST.Equal(intra.SGST))

			inter, err := gst.ComputeLine(item, gst.InterState)
			require.NoError(t, err)
			assert.True(t, inter.CGST.IsZero())
			assert.True(t, inter.SGST.IsZero())
		}
	}
}
