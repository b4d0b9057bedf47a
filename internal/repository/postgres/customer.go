package postgres

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/customer"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type customerRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewCustomerRepository creates a new instance of customer repository
func NewCustomerRepository(db postgres.IClient, logger *logger.Logger) customer.Repository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (
			id, name, email, phone, lifetime_value, outstanding_balance,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :name, :email, :phone, :lifetime_value, :outstanding_balance,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, c); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create customer").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	query := `
		SELECT * FROM customers
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":        id,
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
	}

	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query customer").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("customer not found").
			WithHintf("Customer %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var c customer.Customer
	if err := rows.StructScan(&c); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan customer").
			Mark(ierr.ErrDatabase)
	}
	return &c, nil
}

// ApplyPaymentTotals runs in the payment transaction so the aggregates
// move in lockstep with the invoice balance.
func (r *customerRepository) ApplyPaymentTotals(ctx context.Context, customerID string, amount decimal.Decimal) error {
	query := `
		UPDATE customers
		SET
			lifetime_value = lifetime_value + :amount,
			outstanding_balance = outstanding_balance - :amount,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":         customerID,
		"amount":     amount,
		"updated_by": types.GetUserID(ctx),
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusPublished,
	}

	result, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update customer payment totals").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("customer not found").
			WithHintf("Customer %s was not found", customerID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
