package dto

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/billyribeiro-ux/fieldforge/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateJobRequest creates a new job in lead status
type CreateJobRequest struct {
	CustomerID     string          `json:"customer_id" binding:"required"`
	PropertyID     *string         `json:"property_id,omitempty"`
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	Priority       string          `json:"priority"`
	AssignedTo     *string         `json:"assigned_to,omitempty"`
	ScheduledStart *time.Time      `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time      `json:"scheduled_end,omitempty"`
	BudgetAmount   decimal.Decimal `json:"budget_amount"`
}

func (r *CreateJobRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Priority != "" {
		if err := types.JobPriority(r.Priority).Validate(); err != nil {
			return err
		}
	}
	if r.BudgetAmount.IsNegative() {
		return ierr.NewError("budget amount must not be negative").
			WithHint("Please provide a non negative budget amount").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToJob converts the request into a domain job
func (r *CreateJobRequest) ToJob(ctx context.Context) *job.Job {
	priority := types.JobPriorityNormal
	if r.Priority != "" {
		priority = types.JobPriority(r.Priority)
	}
	return &job.Job{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		CustomerID:     r.CustomerID,
		PropertyID:     r.PropertyID,
		Title:          r.Title,
		Description:    r.Description,
		JobStatus:      types.JobStatusLead,
		Priority:       priority,
		AssignedTo:     r.AssignedTo,
		ScheduledStart: r.ScheduledStart,
		ScheduledEnd:   r.ScheduledEnd,
		BudgetAmount:   r.BudgetAmount,
		TotalAmount:    decimal.Zero,
		Version:        1,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// UpdateJobRequest edits job fields outside the state machine
type UpdateJobRequest struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Priority       *string          `json:"priority,omitempty"`
	AssignedTo     *string          `json:"assigned_to,omitempty"`
	ScheduledStart *time.Time       `json:"scheduled_start,omitempty"`
	ScheduledEnd   *time.Time       `json:"scheduled_end,omitempty"`
	BudgetAmount   *decimal.Decimal `json:"budget_amount,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	if r.Priority != nil {
		if err := types.JobPriority(*r.Priority).Validate(); err != nil {
			return err
		}
	}
	if r.BudgetAmount != nil && r.BudgetAmount.IsNegative() {
		return ierr.NewError("budget amount must not be negative").
			WithHint("Please provide a non negative budget amount").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TransitionJobRequest moves a job to a new status
type TransitionJobRequest struct {
	Status    string   `json:"status" binding:"required"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Note      *string  `json:"note,omitempty"`
}

func (r *TransitionJobRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return types.JobStatus(r.Status).Validate()
}

// JobResponse wraps a job with transition metadata
type JobResponse struct {
	*job.Job
	Meta *JobResponseMeta `json:"meta,omitempty"`
}

// JobResponseMeta carries derived information about the last operation
type JobResponseMeta struct {
	DispatchedEffects []types.EffectTag `json:"dispatched_effects,omitempty"`
	SpawnedJobID      string            `json:"spawned_job_id,omitempty"`
	AllowedTargets    []types.JobStatus `json:"allowed_targets,omitempty"`
}

// ListJobsResponse is a paginated list of jobs
type ListJobsResponse struct {
	Items []*JobResponse `json:"items"`
	Total int            `json:"total"`
}

// JobHistoryResponse lists the transition log of a job
type JobHistoryResponse struct {
	Items []*job.StatusHistory `json:"items"`
	Total int                  `json:"total"`
}
