package service

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	"github.com/billyribeiro-ux/fieldforge/internal/publisher"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// JobService manages jobs and their lifecycle transitions
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(ctx context.Context, id string) (*dto.JobResponse, error)
	UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	ListJobs(ctx context.Context, filter types.JobFilter) (*dto.ListJobsResponse, error)
	GetJobHistory(ctx context.Context, id string) (*dto.JobHistoryResponse, error)
	Transition(ctx context.Context, id string, req *dto.TransitionJobRequest) (*dto.JobResponse, error)
}

type jobService struct {
	ServiceParams
}

// NewJobService creates a new job service
func NewJobService(params ServiceParams) JobService {
	return &jobService{ServiceParams: params}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	j := req.ToJob(ctx)
	if err := s.JobRepo.Create(ctx, j); err != nil {
		return nil, err
	}

	s.Logger.Infow("created job",
		"job_id", j.ID,
		"customer_id", j.CustomerID,
		"tenant_id", j.TenantID,
	)
	return &dto.JobResponse{Job: j}, nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*dto.JobResponse, error) {
	j, err := s.JobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.JobResponse{
		Job: j,
		Meta: &dto.JobResponseMeta{
			AllowedTargets: job.AllowedTargets(j.JobStatus),
		},
	}, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	j, err := s.JobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		j.Title = *req.Title
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Priority != nil {
		j.Priority = types.JobPriority(*req.Priority)
	}
	if req.AssignedTo != nil {
		j.AssignedTo = req.AssignedTo
	}
	if req.ScheduledStart != nil {
		j.ScheduledStart = req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		j.ScheduledEnd = req.ScheduledEnd
	}
	if req.BudgetAmount != nil {
		j.BudgetAmount = *req.BudgetAmount
	}

	if err := s.JobRepo.Update(ctx, j); err != nil {
		return nil, err
	}
	return s.GetJob(ctx, id)
}

func (s *jobService) ListJobs(ctx context.Context, filter types.JobFilter) (*dto.ListJobsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	jobs, err := s.JobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, &dto.JobResponse{Job: j})
	}
	return &dto.ListJobsResponse{Items: items, Total: len(items)}, nil
}

func (s *jobService) GetJobHistory(ctx context.Context, id string) (*dto.JobHistoryResponse, error) {
	if _, err := s.JobRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	history, err := s.JobRepo.ListHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.JobHistoryResponse{Items: history, Total: len(history)}, nil
}

// Transition validates the requested edge against the current status and
// applies it atomically: one history row, the status write, version bump
// and timestamp stamping commit together. Derived side effects are
// published after commit and never roll back the transition.
func (s *jobService) Transition(ctx context.Context, id string, req *dto.TransitionJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	target := types.JobStatus(req.Status)

	var (
		fromStatus types.JobStatus
		spawned    *job.Job
	)

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		j, err := s.JobRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		fromStatus = j.JobStatus

		if err := job.ValidateTransition(j.JobStatus, target); err != nil {
			return err
		}

		history := &job.StatusHistory{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB_STATUS_HISTORY),
			JobID:      j.ID,
			FromStatus: j.JobStatus,
			ToStatus:   target,
			ChangedBy:  types.GetUserID(ctx),
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
			Note:       req.Note,
			TenantID:   j.TenantID,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.JobRepo.InsertHistory(ctx, history); err != nil {
			return err
		}

		if fromStatus == types.JobStatusClosed && target == types.JobStatusLead {
			// A callback spawns a new linked job; the closed job stays
			// closed and only records the edge in its history.
			spawned = s.spawnCallbackJob(ctx, j)
			if err := s.JobRepo.Create(ctx, spawned); err != nil {
				return err
			}
			j.JobStatus = types.JobStatusClosed
		} else {
			j.JobStatus = target
		}

		return s.JobRepo.UpdateStatus(ctx, j)
	})
	if err != nil {
		return nil, err
	}

	effects := s.dispatchEffects(ctx, id, fromStatus, target)

	j, err := s.JobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	meta := &dto.JobResponseMeta{
		DispatchedEffects: effects,
		AllowedTargets:    job.AllowedTargets(j.JobStatus),
	}
	if spawned != nil {
		meta.SpawnedJobID = spawned.ID
	}

	s.Logger.Infow("job transitioned",
		"job_id", id,
		"from_status", fromStatus,
		"to_status", target,
		"effects", effects,
	)
	return &dto.JobResponse{Job: j, Meta: meta}, nil
}

// spawnCallbackJob derives a fresh lead from a closed job
func (s *jobService) spawnCallbackJob(ctx context.Context, parent *job.Job) *job.Job {
	return &job.Job{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		CustomerID:   parent.CustomerID,
		PropertyID:   parent.PropertyID,
		ParentJobID:  &parent.ID,
		Title:        parent.Title,
		Description:  parent.Description,
		JobStatus:    types.JobStatusLead,
		Priority:     parent.Priority,
		AssignedTo:   parent.AssignedTo,
		BudgetAmount: parent.BudgetAmount,
		TotalAmount:  decimal.Zero,
		Version:      1,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

// dispatchEffects publishes the effect tags for the committed edge.
// Failures are logged and swallowed.
func (s *jobService) dispatchEffects(ctx context.Context, jobID string, from, to types.JobStatus) []types.EffectTag {
	effects := job.TransitionEffects(from, to)
	if len(effects) == 0 {
		return nil
	}

	event := publisher.NewEffectEvent(ctx, jobID, from, to, effects)
	if err := s.EffectPublisher.PublishEffects(ctx, event); err != nil {
		s.Logger.Errorw("failed to dispatch transition effects",
			"job_id", jobID,
			"from_status", from,
			"to_status", to,
			"error", err,
		)
	}
	return effects
}
