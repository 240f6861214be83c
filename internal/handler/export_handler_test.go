package handler_test

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fuelbooks/internal/csvexport"
	"fuelbooks/internal/domain"
	"fuelbooks/internal/handler"
	"fuelbooks/internal/invoicesplit"
	"fuelbooks/internal/service"
	"fuelbooks/internal/xlsxexport"
	"fuelbooks/mocks"
)

func newExportHandler() (*handler.ExportHandler, *mocks.MockExportService) {
	mockSvc := new(mocks.MockExportService)
	return handler.NewExportHandler(mockSvc), mockSvc
}

func samplePlan() *invoicesplit.Plan {
	g := invoicesplit.Group{
		ProductID:         uuid.New(),
		ProductName:       "Petrol",
		PaymentMethodID:   uuid.New(),
		PaymentMethodName: "Cash",
		IsFuel:            true,
		TransactionCount:  12,
		TotalQty:          d("500"),
		TotalAmount:       d("45000"),
	}
	return &invoicesplit.Plan{
		Threshold: d("30000"),
		Entries: []invoicesplit.PlanEntry{{
			Group:      g,
			NeedsSplit: true,
			Lines: []invoicesplit.SplitLine{
				{SequenceIndex: 1, Quantity: d("333"), Rate: d("90"), Amount: d("29970")},
				{SequenceIndex: 2, Quantity: d("167"), Rate: d("90"), Amount: d("15030"), AdjustmentNote: "+0.00"},
			},
		}},
		Unsplittable: []invoicesplit.UnsplittableGroup{},
	}
}

// The handler takes inclusive calendar days and hands the service [from, to+1).
func inclusiveRange(from, to string) interface{} {
	f, _ := time.Parse(time.DateOnly, from)
	t, _ := time.Parse(time.DateOnly, to)
	return mock.MatchedBy(func(r domain.DateRange) bool {
		return r.From.Equal(f) && r.To.Equal(t.AddDate(0, 0, 1))
	})
}

func TestExportHandler_Plan_Success(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Plan", mock.Anything, inclusiveRange("2024-04-01", "2024-04-30")).Return(samplePlan(), nil)

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan?from=2024-04-01&to=2024-04-30", "")

	h.Plan(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	meta := resp.Meta.(map[string]interface{})
	assert.Equal(t, float64(2), meta["line_count"])
	assert.Equal(t, "45000", meta["total_amount"])
	mockSvc.AssertExpectations(t)
}

func TestExportHandler_Plan_MissingDates(t *testing.T) {
	h, mockSvc := newExportHandler()

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan?from=2024-04-01", "")

	h.Plan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeResponse(t, w).Error.Code)
	mockSvc.AssertNotCalled(t, "Plan", mock.Anything, mock.Anything)
}

func TestExportHandler_Plan_BadDateFormat(t *testing.T) {
	h, _ := newExportHandler()

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan?from=01-04-2024&to=2024-04-30", "")

	h.Plan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeResponse(t, w).Error.Message, "from")
}

func TestExportHandler_Plan_ReversedRange(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Plan", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidDateRange)

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan?from=2024-04-30&to=2024-04-01", "")

	h.Plan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DATE_RANGE", decodeResponse(t, w).Error.Code)
}

func TestExportHandler_PlanCSV(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Plan", mock.Anything, inclusiveRange("2024-04-01", "2024-04-30")).Return(samplePlan(), nil)

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan.csv?from=2024-04-01&to=2024-04-30", "")

	h.PlanCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="sales_split_20240401_20240430.csv"`)

	body := w.Body.Bytes()
	require.True(t, bytes.HasPrefix(body, csvexport.BOM))
	rows := strings.Split(strings.TrimSpace(string(body[len(csvexport.BOM):])), "\n")
	assert.Len(t, rows, 3)
	assert.True(t, strings.HasPrefix(rows[0], "Product,"))
	assert.Contains(t, rows[2], "+0.00")
}

func TestExportHandler_PlanXLSX(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Plan", mock.Anything, mock.Anything).Return(samplePlan(), nil)

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan.xlsx?from=2024-04-01&to=2024-04-30", "")

	h.PlanXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(xlsxexport.PlanSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportHandler_PlanXLSX_ServiceError(t *testing.T) {
	h, mockSvc := newExportHandler()

	mockSvc.On("Plan", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	c, w := newRawContext(http.MethodGet, "/api/v1/exports/sales/plan.xlsx?from=2024-04-01&to=2024-04-30", "")

	h.PlanXLSX(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeResponse(t, w).Error.Code)
}

func TestExportHandler_Run_Success(t *testing.T) {
	h, mockSvc := newExportHandler()

	plan := samplePlan()
	result := &service.ExportResult{
		BatchID: uuid.New(),
		Plan:    plan,
		Lines: []service.LineOutcome{
			{SequenceIndex: 1, Amount: d("29970"), SalesRecordID: uuid.New(), Status: domain.ExportLineCreated},
			{SequenceIndex: 2, Amount: d("15030"), Status: domain.ExportLineFailed, Error: "insert failed"},
		},
		Created: 1,
		Failed:  1,
	}
	mockSvc.On("Run", mock.Anything, inclusiveRange("2024-04-01", "2024-04-30")).Return(result, nil)

	c, w := newRawContext(http.MethodPost, "/api/v1/exports/sales?from=2024-04-01&to=2024-04-30", "")

	h.Run(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["created"])
	assert.Equal(t, float64(1), data["failed"])
	mockSvc.AssertExpectations(t)
}
