package types

import (
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/samber/lo"
)

// JobStatus is the position of a job in the operational lifecycle.
// Transitions between statuses are validated by the job state machine;
// the zero job always starts as a lead.
type JobStatus string

const (
	JobStatusLead       JobStatus = "lead"
	JobStatusEstimated  JobStatus = "estimated"
	JobStatusApproved   JobStatus = "approved"
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusEnRoute    JobStatus = "en_route"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusPaused     JobStatus = "paused"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusInvoiced   JobStatus = "invoiced"
	JobStatusPaid       JobStatus = "paid"
	JobStatusClosed     JobStatus = "closed"
	JobStatusCancelled  JobStatus = "cancelled"
	JobStatusDeclined   JobStatus = "declined"
)

func (s JobStatus) String() string {
	return string(s)
}

func (s JobStatus) Validate() error {
	allowed := []JobStatus{
		JobStatusLead,
		JobStatusEstimated,
		JobStatusApproved,
		JobStatusScheduled,
		JobStatusEnRoute,
		JobStatusInProgress,
		JobStatusPaused,
		JobStatusCompleted,
		JobStatusInvoiced,
		JobStatusPaid,
		JobStatusClosed,
		JobStatusCancelled,
		JobStatusDeclined,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid job status").
			WithHint("Please provide a valid job status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// JobPriority orders jobs on the dispatch board
type JobPriority string

const (
	JobPriorityEmergency JobPriority = "emergency"
	JobPriorityHigh      JobPriority = "high"
	JobPriorityNormal    JobPriority = "normal"
	JobPriorityLow       JobPriority = "low"
)

func (p JobPriority) String() string {
	return string(p)
}

func (p JobPriority) Validate() error {
	allowed := []JobPriority{
		JobPriorityEmergency,
		JobPriorityHigh,
		JobPriorityNormal,
		JobPriorityLow,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid job priority").
			WithHint("Please provide a valid job priority").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
