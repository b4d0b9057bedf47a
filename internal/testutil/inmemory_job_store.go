package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// InMemoryJobStore implements job.Repository
type InMemoryJobStore struct {
	*InMemoryStore[*job.Job]
	historyMu sync.RWMutex
	history   []*job.StatusHistory
}

// NewInMemoryJobStore creates a new in-memory job repository
func NewInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		InMemoryStore: NewInMemoryStore[*job.Job](),
	}
}

func copyJob(j *job.Job) *job.Job {
	cp := *j
	return &cp
}

// snapshot also captures the history log. Rows are immutable once
// written, so copying the slice header is enough.
func (s *InMemoryJobStore) snapshot() func() {
	restoreItems := s.InMemoryStore.snapshot()

	s.historyMu.RLock()
	saved := make([]*job.StatusHistory, len(s.history))
	copy(saved, s.history)
	s.historyMu.RUnlock()

	return func() {
		restoreItems()
		s.historyMu.Lock()
		s.history = saved
		s.historyMu.Unlock()
	}
}

func (s *InMemoryJobStore) Create(ctx context.Context, j *job.Job) error {
	if err := s.InMemoryStore.Create(ctx, j.ID, copyJob(j)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create job").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryJobStore) Get(ctx context.Context, id string) (*job.Job, error) {
	j, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || j.TenantID != types.GetTenantID(ctx) {
		return nil, ierr.NewError("job not found").
			WithHintf("Job with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyJob(j), nil
}

// GetForUpdate behaves like Get; exclusion is provided by the
// serializing transaction client.
func (s *InMemoryJobStore) GetForUpdate(ctx context.Context, id string) (*job.Job, error) {
	return s.Get(ctx, id)
}

func (s *InMemoryJobStore) Update(ctx context.Context, j *job.Job) error {
	existing, err := s.Get(ctx, j.ID)
	if err != nil {
		return err
	}

	cp := copyJob(j)
	cp.Version = existing.Version + 1
	cp.UpdatedAt = time.Now().UTC()
	cp.UpdatedBy = types.GetUserID(ctx)
	if err := s.InMemoryStore.Update(ctx, j.ID, cp); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update job").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryJobStore) UpdateStatus(ctx context.Context, j *job.Job) error {
	existing, err := s.Get(ctx, j.ID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	cp := copyJob(existing)
	cp.JobStatus = j.JobStatus
	cp.Version = existing.Version + 1
	cp.UpdatedAt = now
	cp.UpdatedBy = types.GetUserID(ctx)
	if j.JobStatus == types.JobStatusInProgress && cp.StartedAt == nil {
		cp.StartedAt = &now
	}
	if j.JobStatus == types.JobStatusCompleted {
		cp.CompletedAt = &now
	}

	if err := s.InMemoryStore.Update(ctx, j.ID, cp); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update job status").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryJobStore) List(ctx context.Context, filter types.JobFilter) ([]*job.Job, error) {
	jobs, err := s.InMemoryStore.List(ctx, filter,
		func(ctx context.Context, j *job.Job, f interface{}) bool {
			jf := f.(types.JobFilter)
			if j.TenantID != types.GetTenantID(ctx) {
				return false
			}
			if jf.Status != "" && string(j.JobStatus) != jf.Status {
				return false
			}
			if jf.Priority != "" && string(j.Priority) != jf.Priority {
				return false
			}
			if jf.CustomerID != "" && j.CustomerID != jf.CustomerID {
				return false
			}
			if jf.AssignedTo != "" && (j.AssignedTo == nil || *j.AssignedTo != jf.AssignedTo) {
				return false
			}
			return true
		},
		func(a, b *job.Job) bool { return a.ID > b.ID },
	)
	if err != nil {
		return nil, err
	}

	limit := filter.GetLimit()
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}

	out := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, copyJob(j))
	}
	return out, nil
}

func (s *InMemoryJobStore) InsertHistory(ctx context.Context, h *job.StatusHistory) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	cp := *h
	s.history = append(s.history, &cp)
	return nil
}

func (s *InMemoryJobStore) ListHistory(ctx context.Context, jobID string) ([]*job.StatusHistory, error) {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()

	var out []*job.StatusHistory
	for _, h := range s.history {
		if h.JobID == jobID && h.TenantID == types.GetTenantID(ctx) {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}
