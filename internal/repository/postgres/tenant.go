package postgres

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/tenant"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
)

type tenantRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewTenantRepository creates a new instance of tenant repository
func NewTenantRepository(db postgres.IClient, logger *logger.Logger) tenant.Repository {
	return &tenantRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	query := `
		INSERT INTO tenants (
			id, name, estimate_prefix, invoice_prefix,
			estimate_next_number, invoice_next_number, tax_rate,
			status, created_at, updated_at
		) VALUES (
			:id, :name, :estimate_prefix, :invoice_prefix,
			:estimate_next_number, :invoice_next_number, :tax_rate,
			:status, :created_at, :updated_at
		)`

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, t); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*tenant.Tenant, error) {
	query := `
		SELECT * FROM tenants
		WHERE id = :id
		AND status = :status`

	params := map[string]interface{}{
		"id":     id,
		"status": types.StatusPublished,
	}

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query tenant").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("tenant not found").
			WithHintf("Tenant %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var t tenant.Tenant
	if err := rows.StructScan(&t); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan tenant").
			Mark(ierr.ErrDatabase)
	}
	return &t, nil
}

// NextDocumentNumber increments the tenant counter and formats the
// number it held before the increment, in a single round trip. The row
// update takes the row lock, so concurrent creations within a tenant
// serialize and the sequence stays gapless on success.
func (r *tenantRepository) NextDocumentNumber(ctx context.Context, kind types.DocumentKind) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	var query string
	switch kind {
	case types.DocumentKindEstimate:
		query = `
			UPDATE tenants
			SET estimate_next_number = estimate_next_number + 1, updated_at = NOW()
			WHERE id = :id AND status = :status
			RETURNING estimate_prefix || '-' || LPAD((estimate_next_number - 1)::text, 4, '0') AS doc_number`
	case types.DocumentKindInvoice:
		query = `
			UPDATE tenants
			SET invoice_next_number = invoice_next_number + 1, updated_at = NOW()
			WHERE id = :id AND status = :status
			RETURNING invoice_prefix || '-' || LPAD((invoice_next_number - 1)::text, 4, '0') AS doc_number`
	}

	params := map[string]interface{}{
		"id":     types.GetTenantID(ctx),
		"status": types.StatusPublished,
	}

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to allocate document number").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", ierr.NewError("tenant not found").
			WithHint("Tenant for document numbering was not found").
			Mark(ierr.ErrNotFound)
	}

	var number string
	if err := rows.Scan(&number); err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to scan document number").
			Mark(ierr.ErrDatabase)
	}

	r.logger.Debugw("allocated document number",
		"tenant_id", types.GetTenantID(ctx),
		"kind", kind,
		"number", number,
	)
	return number, nil
}
