package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"fuelbooks/internal/csvexport"
	"fuelbooks/internal/domain"
	"fuelbooks/internal/invoicesplit"
	"fuelbooks/internal/service"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testPlan() *invoicesplit.Plan {
	petrol := invoicesplit.Group{
		ProductID:         uuid.New(),
		ProductName:       "Petrol",
		PaymentMethodID:   uuid.New(),
		PaymentMethodName: "Cash",
		IsFuel:            true,
		TransactionCount:  40,
		TotalQty:          d("500"),
		TotalAmount:       d("45000"),
	}
	lube := invoicesplit.Group{
		ProductName:       "Engine Oil",
		PaymentMethodName: "Card",
		TotalQty:          d("1"),
		TotalAmount:       d("45000"),
	}
	return &invoicesplit.Plan{
		Threshold: d("30000"),
		Entries: []invoicesplit.PlanEntry{{
			Group:      petrol,
			NeedsSplit: true,
			Lines: []invoicesplit.SplitLine{
				{SequenceIndex: 1, Quantity: d("333"), Rate: d("90"), Amount: d("29970")},
				{SequenceIndex: 2, Quantity: d("167"), Rate: d("90"), Amount: d("15030"), AdjustmentNote: "+0.00"},
			},
		}},
		Unsplittable: []invoicesplit.UnsplittableGroup{
			{Group: lube, Reason: "a single unit costs more than the threshold"},
		},
	}
}

func TestNewPlanPrinter_UnknownFormat(t *testing.T) {
	_, err := newPlanPrinter("xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestPlanPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPlanPrinter(formatTable, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Plan(testPlan()))

	out := buf.String()
	assert.Contains(t, out, "PRODUCT")
	assert.Contains(t, out, "29970.00")
	assert.Contains(t, out, "15030.00")
	assert.Contains(t, out, "2 lines, total 45000.00 (threshold 30000.00)")
	assert.Contains(t, out, "UNSPLITTABLE")
	assert.Contains(t, out, "Engine Oil")
}

func TestPlanPrinter_CSV(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPlanPrinter(formatCSV, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Plan(testPlan()))

	assert.False(t, bytes.HasPrefix(buf.Bytes(), csvexport.BOM))
	rows := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header, two split lines, one unsplittable row
	assert.Len(t, rows, 4)
}

func TestPlanPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPlanPrinter(formatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Plan(testPlan()))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc["line_count"])
	assert.Equal(t, "45000", doc["total_amount"])

	groups := doc["groups"].([]interface{})
	require.Len(t, groups, 1)
	g := groups[0].(map[string]interface{})
	assert.Equal(t, "Petrol", g["product"])
	assert.Equal(t, true, g["needs_split"])
	assert.Len(t, g["lines"], 2)

	unsplittable := doc["unsplittable"].([]interface{})
	require.Len(t, unsplittable, 1)
	assert.Equal(t, "a single unit costs more than the threshold",
		unsplittable[0].(map[string]interface{})["unsplittable_reason"])
}

func TestPlanPrinter_ResultYAML(t *testing.T) {
	var buf bytes.Buffer
	p, err := newPlanPrinter(formatYAML, &buf)
	require.NoError(t, err)

	recordID := uuid.New()
	result := &service.ExportResult{
		BatchID: uuid.New(),
		Plan:    testPlan(),
		Lines: []service.LineOutcome{
			{ProductName: "Petrol", SequenceIndex: 1, Amount: d("29970"), SalesRecordID: recordID, Status: domain.ExportLineCreated},
			{ProductName: "Petrol", SequenceIndex: 2, Amount: d("15030"), Status: domain.ExportLineFailed, Error: "insert failed"},
		},
		Created: 1,
		Failed:  1,
	}

	require.NoError(t, p.Result(result))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc["created"])
	lines := doc["lines"].([]interface{})
	require.Len(t, lines, 2)
	assert.Equal(t, recordID.String(), lines[0].(map[string]interface{})["sales_record_id"])
	_, hasID := lines[1].(map[string]interface{})["sales_record_id"]
	assert.False(t, hasID)
}

func TestRangeFlags_DateRange(t *testing.T) {
	f := rangeFlags{from: "2024-04-01", to: "2024-04-30"}

	r, err := f.dateRange()
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", r.To.Format("2006-01-02"))
	assert.Equal(t, "2024-04-30", r.LastDay().Format("2006-01-02"))
}

func TestRangeFlags_Reversed(t *testing.T) {
	f := rangeFlags{from: "2024-04-30", to: "2024-04-01"}

	_, err := f.dateRange()
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRangeFlags_SingleDay(t *testing.T) {
	f := rangeFlags{from: "2024-04-01", to: "2024-04-01"}

	r, err := f.dateRange()
	require.NoError(t, err)
	assert.Equal(t, 24*60*60, int(r.To.Sub(r.From).Seconds()))
}
