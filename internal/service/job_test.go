package service

import (
	"testing"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/testutil"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type JobServiceSuite struct {
	testutil.BaseServiceTestSuite
	service JobService
}

func TestJobService(t *testing.T) {
	suite.Run(t, new(JobServiceSuite))
}

func (s *JobServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewJobService(s.params())
}

func (s *JobServiceSuite) params() ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		EffectPublisher: s.GetPublisher(),
		JobRepo:         stores.JobRepo,
		EstimateRepo:    stores.EstimateRepo,
		InvoiceRepo:     stores.InvoiceRepo,
		LineItemRepo:    stores.LineItemRepo,
		PaymentRepo:     stores.PaymentRepo,
		CustomerRepo:    stores.CustomerRepo,
		TenantRepo:      stores.TenantRepo,
	}
}

func (s *JobServiceSuite) seedJob(status types.JobStatus) *job.Job {
	j := &job.Job{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		CustomerID:   "cust_1",
		Title:        "AC repair",
		JobStatus:    status,
		Priority:     types.JobPriorityNormal,
		BudgetAmount: decimal.NewFromInt(500),
		TotalAmount:  decimal.Zero,
		Version:      1,
		BaseModel:    types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().JobRepo.Create(s.GetContext(), j))
	return j
}

func (s *JobServiceSuite) TestCreateJob() {
	resp, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		CustomerID:   "cust_1",
		Title:        "Water heater install",
		Priority:     "high",
		BudgetAmount: decimal.NewFromInt(1200),
	})
	s.NoError(err)
	s.Equal(types.JobStatusLead, resp.JobStatus)
	s.Equal(types.JobPriorityHigh, resp.Priority)
	s.Equal(1, resp.Version)
	s.Equal(types.DefaultTenantID, resp.TenantID)
}

func (s *JobServiceSuite) TestCreateJob_Invalid() {
	_, err := s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		Title: "missing customer",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateJob(s.GetContext(), &dto.CreateJobRequest{
		CustomerID: "cust_1",
		Title:      "bad priority",
		Priority:   "urgent",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *JobServiceSuite) TestTransition_Valid() {
	j := s.seedJob(types.JobStatusLead)

	resp, err := s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{
		Status: "estimated",
	})
	s.NoError(err)
	s.Equal(types.JobStatusEstimated, resp.JobStatus)
	s.Equal(2, resp.Version)

	history, err := s.GetStores().JobRepo.ListHistory(s.GetContext(), j.ID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(types.JobStatusLead, history[0].FromStatus)
	s.Equal(types.JobStatusEstimated, history[0].ToStatus)
	s.Equal(types.DefaultUserID, history[0].ChangedBy)
}

func (s *JobServiceSuite) TestTransition_InvalidEdgeWritesNothing() {
	j := s.seedJob(types.JobStatusLead)

	_, err := s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{
		Status: "paid",
	})
	s.Error(err)
	s.True(ierr.IsInvalidTransition(err))

	// job unchanged, no history row
	got, err := s.GetStores().JobRepo.Get(s.GetContext(), j.ID)
	s.NoError(err)
	s.Equal(types.JobStatusLead, got.JobStatus)
	s.Equal(1, got.Version)

	history, err := s.GetStores().JobRepo.ListHistory(s.GetContext(), j.ID)
	s.NoError(err)
	s.Empty(history)
}

func (s *JobServiceSuite) TestTransition_NotFound() {
	_, err := s.service.Transition(s.GetContext(), "job_missing", &dto.TransitionJobRequest{
		Status: "estimated",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *JobServiceSuite) TestTransition_CrossTenantIsNotFound() {
	j := s.seedJob(types.JobStatusLead)

	otherCtx := testutil.SetupContextForTenant("tenant_other")
	_, err := s.service.Transition(otherCtx, j.ID, &dto.TransitionJobRequest{
		Status: "estimated",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *JobServiceSuite) TestTransition_TimestampStamping() {
	j := s.seedJob(types.JobStatusScheduled)

	resp, err := s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{Status: "in_progress"})
	s.NoError(err)
	s.NotNil(resp.StartedAt)
	s.Nil(resp.CompletedAt)
	startedAt := *resp.StartedAt

	// pause and resume must not reset started_at
	_, err = s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{Status: "paused"})
	s.NoError(err)
	resp, err = s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{Status: "in_progress"})
	s.NoError(err)
	s.Equal(startedAt, *resp.StartedAt)

	resp, err = s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{Status: "completed"})
	s.NoError(err)
	s.NotNil(resp.CompletedAt)
}

func (s *JobServiceSuite) TestTransition_DispatchesEffects() {
	j := s.seedJob(types.JobStatusEnRoute)

	resp, err := s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{
		Status: "in_progress",
	})
	s.NoError(err)
	s.Equal(
		[]types.EffectTag{types.EffectStopNavigation, types.EffectStartTimeTracking, types.EffectGeofenceCheckin},
		resp.Meta.DispatchedEffects,
	)

	events := s.GetPublisher().Events()
	s.Len(events, 1)
	s.Equal(j.ID, events[0].JobID)
	s.Equal(types.JobStatusEnRoute, events[0].FromStatus)
	s.Equal(types.JobStatusInProgress, events[0].ToStatus)
	s.Equal(resp.Meta.DispatchedEffects, events[0].Effects)
}

func (s *JobServiceSuite) TestTransition_PublishFailureDoesNotRollBack() {
	j := s.seedJob(types.JobStatusApproved)
	s.GetPublisher().FailNext = ierr.NewError("broker unavailable").Mark(ierr.ErrSystem)

	resp, err := s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{
		Status: "scheduled",
	})
	s.NoError(err)
	s.Equal(types.JobStatusScheduled, resp.JobStatus)

	// the transition committed even though nothing was delivered
	s.Empty(s.GetPublisher().Events())
	history, err := s.GetStores().JobRepo.ListHistory(s.GetContext(), j.ID)
	s.NoError(err)
	s.Len(history, 1)
}

func (s *JobServiceSuite) TestTransition_FullLifecyclePath() {
	j := s.seedJob(types.JobStatusEstimated)

	path := []string{
		"approved", "scheduled", "en_route", "in_progress",
		"completed", "invoiced", "paid", "closed", "lead",
	}
	var last *dto.JobResponse
	for _, target := range path {
		var err error
		last, err = s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{Status: target})
		s.NoError(err, "transition to %s", target)
	}

	history, err := s.GetStores().JobRepo.ListHistory(s.GetContext(), j.ID)
	s.NoError(err)
	s.Len(history, len(path))
	for i := 1; i < len(history); i++ {
		s.Equal(history[i-1].ToStatus, history[i].FromStatus)
	}

	// closed -> lead spawns a linked job; the original stays closed
	s.Equal(types.JobStatusClosed, last.JobStatus)
	s.NotEmpty(last.Meta.SpawnedJobID)

	spawned, err := s.GetStores().JobRepo.Get(s.GetContext(), last.Meta.SpawnedJobID)
	s.NoError(err)
	s.Equal(types.JobStatusLead, spawned.JobStatus)
	s.Equal(j.ID, *spawned.ParentJobID)
	s.Equal(j.CustomerID, spawned.CustomerID)
}

func (s *JobServiceSuite) TestTransition_SkippingIntermediateStateFails() {
	j := s.seedJob(types.JobStatusEstimated)

	for _, target := range []string{"scheduled", "in_progress", "invoiced", "paid", "closed"} {
		_, err := s.service.Transition(s.GetContext(), j.ID, &dto.TransitionJobRequest{Status: target})
		s.Error(err, "transition to %s should fail", target)
		s.True(ierr.IsInvalidTransition(err))
	}
}

func (s *JobServiceSuite) TestUpdateJob_BumpsVersion() {
	j := s.seedJob(types.JobStatusLead)

	title := "Updated title"
	resp, err := s.service.UpdateJob(s.GetContext(), j.ID, &dto.UpdateJobRequest{Title: &title})
	s.NoError(err)
	s.Equal("Updated title", resp.Title)
	s.Equal(2, resp.Version)
}

func (s *JobServiceSuite) TestGetJob_ReportsAllowedTargets() {
	j := s.seedJob(types.JobStatusInProgress)

	resp, err := s.service.GetJob(s.GetContext(), j.ID)
	s.NoError(err)
	s.ElementsMatch(
		[]types.JobStatus{types.JobStatusPaused, types.JobStatusCompleted},
		resp.Meta.AllowedTargets,
	)
}

func (s *JobServiceSuite) TestListJobs_FiltersByStatus() {
	s.seedJob(types.JobStatusLead)
	s.seedJob(types.JobStatusLead)
	s.seedJob(types.JobStatusScheduled)

	resp, err := s.service.ListJobs(s.GetContext(), types.JobFilter{Status: "lead"})
	s.NoError(err)
	s.Equal(2, resp.Total)
}
