package handler

import (
	"github.com/gin-gonic/gin"

	"fuelbooks/internal/service"
)

// TaxHandler handles single-line tax endpoints.
type TaxHandler struct {
	poService service.PurchaseOrderService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(poService service.PurchaseOrderService) *TaxHandler {
	return &TaxHandler{poService: poService}
}

// ComputeLine handles POST /api/v1/tax/lines
// @Summary Compute line tax
// @Description Computes taxable amount and CGST/SGST or IGST plus cess for one line. Jurisdiction is taken from the request or resolved from the counterparty state code/GSTIN against the home state.
// @Tags tax
// @Accept json
// @Produce json
// @Param body body service.ComputeLineInput true "Line and jurisdiction"
// @Success 200 {object} Response{data=service.LineResult}
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /tax/lines [post]
func (h *TaxHandler) ComputeLine(c *gin.Context) {
	var req service.ComputeLineInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.poService.ComputeLine(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// EditCess handles POST /api/v1/tax/lines/cess
// @Summary Reverse-edit line cess
// @Description Applies a cess amount (deriving the rate) or a cess rate (deriving the amount). No-op while the taxable amount is zero.
// @Tags tax
// @Accept json
// @Produce json
// @Param body body service.EditCessInput true "Line, current breakdown and the edited cess"
// @Success 200 {object} Response{data=service.LineResult}
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /tax/lines/cess [post]
func (h *TaxHandler) EditCess(c *gin.Context) {
	var req service.EditCessInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.poService.EditCess(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
