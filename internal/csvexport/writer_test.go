package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelbooks/internal/invoicesplit"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 12)
	assert.Equal(t, "Product", row[0])
	assert.Equal(t, "Adjustment Note", row[11])
}

func TestWritePlan(t *testing.T) {
	groups := []invoicesplit.Group{
		{
			ProductName:       "Petrol",
			PaymentMethodName: "Cash",
			IsFuel:            true,
			TransactionCount:  12,
			TotalQty:          decimal.NewFromInt(500),
			TotalAmount:       decimal.NewFromInt(45000),
		},
		{
			ProductName:       "Diesel",
			PaymentMethodName: "Credit",
			IsFuel:            true,
			TransactionCount:  1,
			TotalQty:          decimal.Zero,
			TotalAmount:       decimal.NewFromInt(40000),
		},
	}
	plan, err := invoicesplit.BuildPlan(groups, decimal.NewFromInt(30000))
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WritePlan(plan))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Petrol", "Cash", "", "Yes", "12", "500.000", "45000.00", "1", "333.000", "90.00", "29970.00", ""}, rows[0])
	assert.Equal(t, "167.000", rows[1][8])
	assert.Equal(t, "15030.00", rows[1][10])
	assert.Equal(t, "rounding adjustment +0.00", rows[1][11])

	assert.Equal(t, "Diesel", rows[2][0])
	assert.Empty(t, rows[2][7])
	assert.Equal(t, "unsplittable: average rate is zero", rows[2][11])
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "Yes", formatBool(true))
	assert.Equal(t, "No", formatBool(false))
}
