package v1

import (
	"net/http"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/service"
	"github.com/gin-gonic/gin"
)

// PortalHandler serves the unauthenticated customer portal. Documents
// are resolved by their unguessable token; an unknown token is a plain
// not found, never a hint about which tenant owns it.
type PortalHandler struct {
	estimateSvc service.EstimateService
	invoiceSvc  service.InvoiceService
	log         *logger.Logger
}

func NewPortalHandler(estimateSvc service.EstimateService, invoiceSvc service.InvoiceService, log *logger.Logger) *PortalHandler {
	return &PortalHandler{estimateSvc: estimateSvc, invoiceSvc: invoiceSvc, log: log}
}

// @Summary View an estimate via portal token
// @Description View an estimate as the customer, stamping viewed_at on first open
// @Tags Portal
// @Accept json
// @Produce json
// @Param token path string true "Portal token"
// @Success 200 {object} dto.EstimateResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /portal/estimates/{token} [get]
func (h *PortalHandler) ViewEstimate(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.Error(ierr.NewError("token is required").
			WithHint("Portal token is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.estimateSvc.ViewEstimateByToken(c.Request.Context(), token)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Approve an estimate via portal token
// @Description Approve an estimate as the customer
// @Tags Portal
// @Accept json
// @Produce json
// @Param token path string true "Portal token"
// @Param approval body dto.ApproveEstimateRequest false "Approval details"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /portal/estimates/{token}/approve [post]
func (h *PortalHandler) ApproveEstimate(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.Error(ierr.NewError("token is required").
			WithHint("Portal token is required").
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

	resp, err := h.estimateSvc.ApproveEstimateByToken(c.Request.Context(), token, &req)
	if err != nil {
		h.log.Errorw("failed to approve estimate via portal", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Decline an estimate via portal token
// @Description Decline an estimate as the customer
// @Tags Portal
// @Accept json
// @Produce json
// @Param token path string true "Portal token"
// @Param decline body dto.DeclineEstimateRequest false "Decline details"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /portal/estimates/{token}/decline [post]
func (h *PortalHandler) DeclineEstimate(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.Error(ierr.NewError("token is required").
			WithHint("Portal token is required").
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

	resp, err := h.estimateSvc.DeclineEstimateByToken(c.Request.Context(), token, &req)
	if err != nil {
		h.log.Errorw("failed to decline estimate via portal", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary View an invoice via portal token
// @Description View an invoice as the customer, stamping viewed_at on first open
// @Tags Portal
// @Accept json
// @Produce json
// @Param token path string true "Portal token"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /portal/invoices/{token} [get]
func (h *PortalHandler) ViewInvoice(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.Error(ierr.NewError("token is required").
			WithHint("Portal token is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.invoiceSvc.ViewInvoiceByToken(c.Request.Context(), token)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
