package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fuelbooks/internal/gst"
	"fuelbooks/internal/service"
)

// DraftLineHandler handles draft purchase-line endpoints backed by the line
// tax coordinator.
type DraftLineHandler struct {
	coordinator service.LineTaxCoordinator
	poService   service.PurchaseOrderService
}

// NewDraftLineHandler creates a new DraftLineHandler.
func NewDraftLineHandler(coordinator service.LineTaxCoordinator, poService service.PurchaseOrderService) *DraftLineHandler {
	return &DraftLineHandler{coordinator: coordinator, poService: poService}
}

func parseLineID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid draft line ID")
		return uuid.Nil, false
	}
	return id, true
}

// Put handles PUT /api/v1/draft-lines/:id
// @Summary Edit a draft line
// @Description Answers with the locally computed breakdown at once and asks the tax service for the authoritative one. A later GET shows which result is current.
// @Tags draft-lines
// @Accept json
// @Produce json
// @Param id path string true "Draft line ID"
// @Param body body DraftLineRequest true "Line edit"
// @Success 202 {object} Response{data=service.LineTaxState}
// @Failure 400 {object} ErrorResponseBody "Invalid input"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /draft-lines/{id} [put]
func (h *DraftLineHandler) Put(c *gin.Context) {
	lineID, ok := parseLineID(c)
	if !ok {
		return
	}
	var req DraftLineRequest
	if !bindJSON(c, &req) {
		return
	}

	j, err := h.poService.ResolveJurisdiction(req.JurisdictionInput)
	if err != nil {
		HandleError(c, err)
		return
	}

	state, err := h.coordinator.Edit(c.Request.Context(), lineID, service.LineEditInput{
		ProductID:    req.ProductID,
		VendorID:     req.VendorID,
		Jurisdiction: j,
		Item:         req.Item,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondAccepted(c, state)
}

// Get handles GET /api/v1/draft-lines/:id
// @Summary Get a draft line's tax
// @Tags draft-lines
// @Produce json
// @Param id path string true "Draft line ID"
// @Success 200 {object} Response{data=service.LineTaxState}
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /draft-lines/{id} [get]
func (h *DraftLineHandler) Get(c *gin.Context) {
	lineID, ok := parseLineID(c)
	if !ok {
		return
	}

	state, err := h.coordinator.State(lineID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Delete handles DELETE /api/v1/draft-lines/:id
// @Summary Forget a draft line
// @Description Drops the line; an authoritative answer still in flight for it is discarded.
// @Tags draft-lines
// @Param id path string true "Draft line ID"
// @Success 204 "No content"
// @Security BearerAuth
// @Router /draft-lines/{id} [delete]
func (h *DraftLineHandler) Delete(c *gin.Context) {
	lineID, ok := parseLineID(c)
	if !ok {
		return
	}
	h.coordinator.Forget(lineID)
	c.Status(http.StatusNoContent)
}

// DraftLineRequest is the body of PUT /draft-lines/:id.
type DraftLineRequest struct {
	service.JurisdictionInput
	ProductID uuid.UUID    `json:"product_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	VendorID  uuid.UUID    `json:"vendor_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Item      gst.LineItem `json:"item"`
}
