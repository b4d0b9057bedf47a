package postgres

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
)

type estimateRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewEstimateRepository creates a new instance of estimate repository
func NewEstimateRepository(db postgres.IClient, logger *logger.Logger) estimate.Repository {
	return &estimateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *estimateRepository) Create(ctx context.Context, e *estimate.Estimate) error {
	query := `
		INSERT INTO estimates (
			id, estimate_number, customer_id, job_id, property_id, estimate_status,
			subtotal, discount_amount, tax_rate, tax_amount, total, portal_token,
			notes, valid_until, sent_at, viewed_at, approved_at, declined_at,
			decline_reason, signature, invoice_id,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :estimate_number, :customer_id, :job_id, :property_id, :estimate_status,
			:subtotal, :discount_amount, :tax_rate, :tax_amount, :total, :portal_token,
			:notes, :valid_until, :sent_at, :viewed_at, :approved_at, :declined_at,
			:decline_reason, :signature, :invoice_id,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating estimate",
		"estimate_id", e.ID,
		"estimate_number", e.EstimateNumber,
		"tenant_id", e.TenantID,
	)

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, e); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create estimate").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *estimateRepository) Get(ctx context.Context, id string) (*estimate.Estimate, error) {
	query := `
		SELECT * FROM estimates
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
	}

	return r.getOne(ctx, query, params, id)
}

// GetByToken resolves a portal token. Tokens are unguessable and grant
// access to exactly one document, so the lookup is not tenant scoped.
func (r *estimateRepository) GetByToken(ctx context.Context, token string) (*estimate.Estimate, error) {
	query := `
		SELECT * FROM estimates
		WHERE portal_token = :portal_token
		AND status = :status`

	params := map[string]interface{}{
		"portal_token": token,
		"status":       types.StatusPublished,
	}

	return r.getOne(ctx, query, params, token)
}

func (r *estimateRepository) getOne(ctx context.Context, query string, params map[string]interface{}, ref string) (*estimate.Estimate, error) {
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query estimate").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("estimate not found").
			WithHintf("Estimate %s was not found", ref).
			Mark(ierr.ErrNotFound)
	}

	var e estimate.Estimate
	if err := rows.StructScan(&e); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan estimate").
			Mark(ierr.ErrDatabase)
	}
	return &e, nil
}

func (r *estimateRepository) Update(ctx context.Context, e *estimate.Estimate) error {
	query := `
		UPDATE estimates
		SET
			estimate_status = :estimate_status,
			sent_at = :sent_at,
			viewed_at = :viewed_at,
			approved_at = :approved_at,
			declined_at = :declined_at,
			decline_reason = :decline_reason,
			signature = :signature,
			invoice_id = :invoice_id,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":              e.ID,
		"estimate_status": e.EstimateStatus,
		"sent_at":         e.SentAt,
		"viewed_at":       e.ViewedAt,
		"approved_at":     e.ApprovedAt,
		"declined_at":     e.DeclinedAt,
		"decline_reason":  e.DeclineReason,
		"signature":       e.Signature,
		"invoice_id":      e.InvoiceID,
		"updated_by":      types.GetUserID(ctx),
		"tenant_id":       e.TenantID,
		"status":          types.StatusPublished,
	}

	result, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update estimate").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("estimate not found").
			WithHintf("Estimate %s was not found", e.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *estimateRepository) List(ctx context.Context, filter types.DocumentFilter) ([]*estimate.Estimate, error) {
	query := `
		SELECT * FROM estimates
		WHERE tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
	}

	if filter.Status != "" {
		query += ` AND estimate_status = :estimate_status`
		params["estimate_status"] = filter.Status
	}
	if filter.CustomerID != "" {
		query += ` AND customer_id = :customer_id`
		params["customer_id"] = filter.CustomerID
	}
	if filter.JobID != "" {
		query += ` AND job_id = :job_id`
		params["job_id"] = filter.JobID
	}
	if filter.Cursor != "" {
		query += ` AND id < :cursor`
		params["cursor"] = filter.Cursor
	}

	query += ` ORDER BY id DESC LIMIT :limit`

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list estimates").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var estimates []*estimate.Estimate
	for rows.Next() {
		var e estimate.Estimate
		if err := rows.StructScan(&e); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan estimate").
				Mark(ierr.ErrDatabase)
		}
		estimates = append(estimates, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate estimates").
			Mark(ierr.ErrDatabase)
	}
	return estimates, nil
}
