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

type JobHandler struct {
	service service.JobService
	log     *logger.Logger
}

func NewJobHandler(service service.JobService, log *logger.Logger) *JobHandler {
	return &JobHandler{service: service, log: log}
}

// @Summary Create a new job
// @Description Create a new job in the lead status
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Job configuration"
// @Success 201 {object} dto.JobResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind json", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create job", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a job by ID
// @Description Get a job with its allowed transition targets
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Job ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a job
// @Description Update mutable job fields without touching its status
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param job body dto.UpdateJobRequest true "Job fields"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Job ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind json", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateJob(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to update job", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List jobs
// @Description List jobs with optional status, priority and assignment filters
// @Tags Jobs
// @Accept json
// @Produce json
// @Param filter query types.JobFilter false "Filter"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filter types.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get job status history
// @Description Get the append-only transition log of a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobHistoryResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /jobs/{id}/history [get]
func (h *JobHandler) GetJobHistory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Job ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetJobHistory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Transition a job
// @Description Move a job to a new status along a legal lifecycle edge
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param transition body dto.TransitionJobRequest true "Target status"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /jobs/{id}/transition [post]
func (h *JobHandler) Transition(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("id is required").
			WithHint("Job ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	var req dto.TransitionJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorw("failed to bind json", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Transition(c.Request.Context(), id, &req)
	if err != nil {
		h.log.Errorw("failed to transition job", "job_id", id, "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
