package handler

import (
	"github.com/gin-gonic/gin"

	"fuelbooks/internal/service"
)

// PurchaseOrderHandler handles purchase-order totals endpoints.
type PurchaseOrderHandler struct {
	poService service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler.
func NewPurchaseOrderHandler(poService service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// Recalculate handles POST /api/v1/purchase-orders/recalculate
// @Summary Recalculate purchase-order totals
// @Description Re-aggregates line breakdowns into document totals. Overridden fields keep the value passed in "current".
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param body body service.RecalculateInput true "Lines, override flags and current totals"
// @Success 200 {object} Response{data=service.DocumentResult}
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /purchase-orders/recalculate [post]
func (h *PurchaseOrderHandler) Recalculate(c *gin.Context) {
	var req service.RecalculateInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.poService.Recalculate(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// EditTotal handles POST /api/v1/purchase-orders/totals/edit
// @Summary Override a document total
// @Description Sets cgst, sgst, igst, cess or discount by hand and flags it as overridden.
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param body body service.EditTotalInput true "Totals, flags and the edited field"
// @Success 200 {object} Response{data=service.DocumentResult}
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /purchase-orders/totals/edit [post]
func (h *PurchaseOrderHandler) EditTotal(c *gin.Context) {
	var req service.EditTotalInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.poService.EditTotal(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// ResetOverride handles POST /api/v1/purchase-orders/totals/reset
// @Summary Clear an override
// @Description Clears one override flag (or all when field is empty) and recalculates.
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param body body service.ResetOverrideInput true "Purchase order and the field to reset"
// @Success 200 {object} Response{data=service.DocumentResult}
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /purchase-orders/totals/reset [post]
func (h *PurchaseOrderHandler) ResetOverride(c *gin.Context) {
	var req service.ResetOverrideInput
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.poService.ResetOverride(c.Request.Context(), req)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
