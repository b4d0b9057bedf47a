package job

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// Repository persists jobs and their transition history
type Repository interface {
	Create(ctx context.Context, j *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	// GetForUpdate locks the job row for the duration of the enclosing
	// transaction so concurrent transitions serialize.
	GetForUpdate(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, j *Job) error
	// UpdateStatus writes the new status, bumps version and maintains
	// started_at and completed_at stamps.
	UpdateStatus(ctx context.Context, j *Job) error
	List(ctx context.Context, filter types.JobFilter) ([]*Job, error)
	InsertHistory(ctx context.Context, h *StatusHistory) error
	ListHistory(ctx context.Context, jobID string) ([]*StatusHistory, error)
}
