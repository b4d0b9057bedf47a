package v1

import (
	"net/http"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/service"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	service service.EstimateService
	log     *logger.Logger
}

func NewEstimateHandler(service service.EstimateService, log *logger.Logger) *EstimateHandler {
	return &EstimateHandler{service: service, log: log}
}

// @Summary Create a new estimate
// @Description Create a draft estimate with frozen totals and a portal token
// @Tags Estimates
// @Accept json
// @Produce json
// @Param estimate body dto.CreateEstimateRequest true "Estimate configuration"
// @Success 201 {object} dto.EstimateResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var req dto.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind json", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateEstimate(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create estimate", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an estimate by ID
// @Description Get an estimate with its line items
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Estimate ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetEstimate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List estimates
// @Description List estimates with optional status, customer and job filters
// @Tags Estimates
// @Accept json
// @Produce json
// @Param filter query types.DocumentFilter false "Filter"
// @Success 200 {object} dto.ListEstimatesResponse
// @Router /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	var filter types.DocumentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListEstimates(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Send an estimate
// @Description Mark a draft estimate sent to the customer
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /estimates/{id}/send [post]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Estimate ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SendEstimate(c.Request.Context(), id)
	if err != nil {
		h.log.Errorw("failed to send estimate", "estimate_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Approve an estimate
// @Description Approve a sent or viewed estimate, forwarding its linked job when legal
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Param approval body dto.ApproveEstimateRequest false "Approval details"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /estimates/{id}/approve [post]
func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Estimate ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.ApproveEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ApproveEstimate(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to approve estimate", "estimate_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Decline an estimate
// @Description Decline a sent or viewed estimate with an optional reason
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Param decline body dto.DeclineEstimateRequest false "Decline details"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /estimates/{id}/decline [post]
func (h *EstimateHandler) DeclineEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Estimate ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.DeclineEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.DeclineEstimate(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to decline estimate", "estimate_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Convert an estimate to an invoice
// @Description Create an invoice 1:1 from an approved estimate
// @Tags Estimates
// @Accept json
// @Produce json
// @Param id path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /estimates/{id}/convert [post]
func (h *EstimateHandler) ConvertToInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Estimate ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ConvertToInvoice(c.Request.Context(), id)
	if err != nil {
		h.log.Errorw("failed to convert estimate", "estimate_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
