package postgres

import (
	"context"
	"database/sql"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
)

type jobRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewJobRepository creates a new instance of job repository
func NewJobRepository(db postgres.IClient, logger *logger.Logger) job.Repository {
	return &jobRepository{
		db:     db,
		logger: logger,
	}
}

func (r *jobRepository) Create(ctx context.Context, j *job.Job) error {
	query := `
		INSERT INTO jobs (
			id, customer_id, property_id, parent_job_id, title, description,
			job_status, priority, assigned_to, scheduled_start, scheduled_end,
			budget_amount, total_amount, started_at, completed_at, version,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :customer_id, :property_id, :parent_job_id, :title, :description,
			:job_status, :priority, :assigned_to, :scheduled_start, :scheduled_end,
			:budget_amount, :total_amount, :started_at, :completed_at, :version,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating job",
		"job_id", j.ID,
		"tenant_id", j.TenantID,
	)

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, j); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create job").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *jobRepository) Get(ctx context.Context, id string) (*job.Job, error) {
	return r.get(ctx, id, false)
}

func (r *jobRepository) GetForUpdate(ctx context.Context, id string) (*job.Job, error) {
	return r.get(ctx, id, true)
}

func (r *jobRepository) get(ctx context.Context, id string, forUpdate bool) (*job.Job, error) {
	query := `
		SELECT * FROM jobs
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	params := map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
	}

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query job").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("job not found").
			WithHintf("Job with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var j job.Job
	if err := rows.StructScan(&j); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan job").
			Mark(ierr.ErrDatabase)
	}
	return &j, nil
}

func (r *jobRepository) Update(ctx context.Context, j *job.Job) error {
	query := `
		UPDATE jobs
		SET
			title = :title,
			description = :description,
			priority = :priority,
			assigned_to = :assigned_to,
			scheduled_start = :scheduled_start,
			scheduled_end = :scheduled_end,
			budget_amount = :budget_amount,
			total_amount = :total_amount,
			version = version + 1,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":              j.ID,
		"title":           j.Title,
		"description":     j.Description,
		"priority":        j.Priority,
		"assigned_to":     j.AssignedTo,
		"scheduled_start": j.ScheduledStart,
		"scheduled_end":   j.ScheduledEnd,
		"budget_amount":   j.BudgetAmount,
		"total_amount":    j.TotalAmount,
		"updated_by":      types.GetUserID(ctx),
		"tenant_id":       types.GetTenantID(ctx),
		"status":          types.StatusPublished,
	}

	result, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update job").
			Mark(ierr.ErrDatabase)
	}
	return r.requireRow(result, j.ID)
}

// UpdateStatus writes the transition result. started_at is stamped the
// first time the job enters in_progress, completed_at when it enters
// completed.
func (r *jobRepository) UpdateStatus(ctx context.Context, j *job.Job) error {
	query := `
		UPDATE jobs
		SET
			job_status = :job_status,
			started_at = CASE
				WHEN :job_status = 'in_progress' AND started_at IS NULL THEN NOW()
				ELSE started_at
			END,
			completed_at = CASE
				WHEN :job_status = 'completed' THEN NOW()
				ELSE completed_at
			END,
			version = version + 1,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":         j.ID,
		"job_status": j.JobStatus,
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusPublished,
	}

	r.logger.Debugw("updating job status",
		"job_id", j.ID,
		"job_status", j.JobStatus,
		"tenant_id", types.GetTenantID(ctx),
	)

	result, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update job status").
			Mark(ierr.ErrDatabase)
	}
	return r.requireRow(result, j.ID)
}

func (r *jobRepository) List(ctx context.Context, filter types.JobFilter) ([]*job.Job, error) {
	query := `
		SELECT * FROM jobs
		WHERE tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
	}

	if filter.Status != "" {
		query += ` AND job_status = :job_status`
		params["job_status"] = filter.Status
	}
	if filter.Priority != "" {
		query += ` AND priority = :priority`
		params["priority"] = filter.Priority
	}
	if filter.CustomerID != "" {
		query += ` AND customer_id = :customer_id`
		params["customer_id"] = filter.CustomerID
	}
	if filter.AssignedTo != "" {
		query += ` AND assigned_to = :assigned_to`
		params["assigned_to"] = filter.AssignedTo
	}
	if filter.Cursor != "" {
		query += ` AND id < :cursor`
		params["cursor"] = filter.Cursor
	}

	query += ` ORDER BY id DESC LIMIT :limit`

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list jobs").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var jobs []*job.Job
	for rows.Next() {
		var j job.Job
		if err := rows.StructScan(&j); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan job").
				Mark(ierr.ErrDatabase)
		}
		jobs = append(jobs, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate jobs").
			Mark(ierr.ErrDatabase)
	}
	return jobs, nil
}

func (r *jobRepository) InsertHistory(ctx context.Context, h *job.StatusHistory) error {
	query := `
		INSERT INTO job_status_history (
			id, job_id, from_status, to_status, changed_by,
			latitude, longitude, note, tenant_id, created_at
		) VALUES (
			:id, :job_id, :from_status, :to_status, :changed_by,
			:latitude, :longitude, :note, :tenant_id, :created_at
		)`

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, h); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record job status history").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *jobRepository) ListHistory(ctx context.Context, jobID string) ([]*job.StatusHistory, error) {
	query := `
		SELECT * FROM job_status_history
		WHERE job_id = :job_id
		AND tenant_id = :tenant_id
		ORDER BY created_at ASC, id ASC`

	params := map[string]interface{}{
		"job_id":    jobID,
		"tenant_id": types.GetTenantID(ctx),
	}

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list job status history").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var history []*job.StatusHistory
	for rows.Next() {
		var h job.StatusHistory
		if err := rows.StructScan(&h); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan job status history").
				Mark(ierr.ErrDatabase)
		}
		history = append(history, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate job status history").
			Mark(ierr.ErrDatabase)
	}
	return history, nil
}

func (r *jobRepository) requireRow(result sql.Result, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("job not found").
			WithHintf("Job with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
