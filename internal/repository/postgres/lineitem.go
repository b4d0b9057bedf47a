package postgres

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
)

type lineItemRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewLineItemRepository creates a new instance of line item repository
func NewLineItemRepository(db postgres.IClient, logger *logger.Logger) lineitem.Repository {
	return &lineItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *lineItemRepository) CreateBulk(ctx context.Context, items []*lineitem.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO line_items (
			id, estimate_id, invoice_id, description, quantity, unit_price,
			taxable, total, sort_order,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :estimate_id, :invoice_id, :description, :quantity, :unit_price,
			:taxable, :total, :sort_order,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	for _, item := range items {
		if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, item); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to create line items").
				Mark(ierr.ErrDatabase)
		}
	}
	return nil
}

func (r *lineItemRepository) ListByEstimate(ctx context.Context, estimateID string) ([]*lineitem.LineItem, error) {
	query := `
		SELECT * FROM line_items
		WHERE estimate_id = :estimate_id
		AND tenant_id = :tenant_id
		AND status = :status
		ORDER BY sort_order ASC, id ASC`

	params := map[string]interface{}{
		"estimate_id": estimateID,
		"tenant_id":   types.GetTenantID(ctx),
		"status":      types.StatusPublished,
	}

	return r.list(ctx, query, params)
}

func (r *lineItemRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*lineitem.LineItem, error) {
	query := `
		SELECT * FROM line_items
		WHERE invoice_id = :invoice_id
		AND tenant_id = :tenant_id
		AND status = :status
		ORDER BY sort_order ASC, id ASC`

	params := map[string]interface{}{
		"invoice_id": invoiceID,
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusPublished,
	}

	return r.list(ctx, query, params)
}

func (r *lineItemRepository) list(ctx context.Context, query string, params map[string]interface{}) ([]*lineitem.LineItem, error) {
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list line items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var items []*lineitem.LineItem
	for rows.Next() {
		var item lineitem.LineItem
		if err := rows.StructScan(&item); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan line item").
				Mark(ierr.ErrDatabase)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate line items").
			Mark(ierr.ErrDatabase)
	}
	return items, nil
}
