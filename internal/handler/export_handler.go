package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fuelbooks/internal/csvexport"
	"fuelbooks/internal/domain"
	"fuelbooks/internal/logger"
	"fuelbooks/internal/middleware"
	"fuelbooks/internal/service"
	"fuelbooks/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles sales export endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// parseDateRange reads the required from/to query dates (YYYY-MM-DD). Both
// days are included, so To is moved to the start of the following day.
func parseDateRange(c *gin.Context) (domain.DateRange, error) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" || toStr == "" {
		return domain.DateRange{}, fmt.Errorf("'from' and 'to' are required")
	}
	from, err := time.Parse(time.DateOnly, fromStr)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid 'from' date: must be YYYY-MM-DD")
	}
	to, err := time.Parse(time.DateOnly, toStr)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid 'to' date: must be YYYY-MM-DD")
	}
	return domain.DateRange{From: from, To: to.AddDate(0, 0, 1)}, nil
}

func exportFilename(r domain.DateRange, ext string) string {
	return fmt.Sprintf("sales_split_%s_%s.%s", r.From.Format("20060102"), r.LastDay().Format("20060102"), ext)
}

// Plan handles GET /api/v1/exports/sales/plan
// @Summary Preview the sales split plan
// @Description Groups the period's POS transactions and splits groups above the threshold. Unsplittable groups are listed separately.
// @Tags exports
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} Response{data=invoicesplit.Plan}
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /exports/sales/plan [get]
func (h *ExportHandler) Plan(c *gin.Context) {
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	plan, err := h.exportService.Plan(c.Request.Context(), r)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondWithMeta(c, plan, gin.H{
		"line_count":   plan.LineCount(),
		"total_amount": plan.TotalAmount(),
	})
}

// PlanCSV handles GET /api/v1/exports/sales/plan.csv
// @Summary Download the split plan as CSV
// @Tags exports
// @Produce text/csv
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /exports/sales/plan.csv [get]
func (h *ExportHandler) PlanCSV(c *gin.Context) {
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	plan, err := h.exportService.Plan(c.Request.Context(), r)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WritePlan(plan); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(r, "csv")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// PlanXLSX handles GET /api/v1/exports/sales/plan.xlsx
// @Summary Download the split plan as a workbook
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {file} file "XLSX file"
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Security BearerAuth
// @Router /exports/sales/plan.xlsx [get]
func (h *ExportHandler) PlanXLSX(c *gin.Context) {
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	plan, err := h.exportService.Plan(c.Request.Context(), r)
	if err != nil {
		HandleError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := xlsxexport.WritePlan(plan, &buf); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(r, "xlsx")))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Run handles POST /api/v1/exports/sales
// @Summary Export sales records
// @Description Creates one sales record per split line. Failed lines are reported per line and are not retried.
// @Tags exports
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} Response{data=service.ExportResult}
// @Failure 400 {object} ErrorResponseBody "Invalid date range"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /exports/sales [post]
func (h *ExportHandler) Run(c *gin.Context) {
	r, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if userID, err := middleware.GetUserID(c); err == nil {
		logger.FromContext(c.Request.Context()).Info("sales export requested",
			zap.String("user_id", userID.String()),
			zap.Time("from", r.From),
			zap.Time("to", r.To),
		)
	}

	result, err := h.exportService.Run(c.Request.Context(), r)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
