package postgres

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/payment"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
)

type paymentRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewPaymentRepository creates a new instance of payment repository
func NewPaymentRepository(db postgres.IClient, logger *logger.Logger) payment.Repository {
	return &paymentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *paymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (
			id, invoice_id, customer_id, amount, tip_amount, net_amount,
			method, payment_status, reference, notes,
			refunded_amount, refund_reason, refunded_at,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :invoice_id, :customer_id, :amount, :tip_amount, :net_amount,
			:method, :payment_status, :reference, :notes,
			:refunded_amount, :refund_reason, :refunded_at,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating payment",
		"payment_id", p.ID,
		"invoice_id", p.InvoiceID,
		"amount", p.Amount,
		"tenant_id", p.TenantID,
	)

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, p); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create payment").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	query := `
		SELECT * FROM payments
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
			WithHint("Failed to query payment").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("payment not found").
			WithHintf("Payment %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	var p payment.Payment
	if err := rows.StructScan(&p); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan payment").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	query := `
		UPDATE payments
		SET
			payment_status = :payment_status,
			refunded_amount = :refunded_amount,
			refund_reason = :refund_reason,
			refunded_at = :refunded_at,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":              p.ID,
		"payment_status":  p.PaymentStatus,
		"refunded_amount": p.RefundedAmount,
		"refund_reason":   p.RefundReason,
		"refunded_at":     p.RefundedAt,
		"updated_by":      types.GetUserID(ctx),
		"tenant_id":       p.TenantID,
		"status":          types.StatusPublished,
	}

	result, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update payment").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("payment not found").
			WithHintf("Payment %s was not found", p.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *paymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*payment.Payment, error) {
	query := `
		SELECT * FROM payments
		WHERE invoice_id = :invoice_id
		AND tenant_id = :tenant_id
		AND status = :status
		ORDER BY created_at ASC, id ASC`

	params := map[string]interface{}{
		"invoice_id": invoiceID,
		"tenant_id":  types.GetTenantID(ctx),
		"status":     types.StatusPublished,
	}

	return r.list(ctx, query, params)
}

func (r *paymentRepository) List(ctx context.Context, filter types.QueryFilter) ([]*payment.Payment, error) {
	query := `
		SELECT * FROM payments
		WHERE tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
	}

	if filter.Cursor != "" {
		query += ` AND id < :cursor`
		params["cursor"] = filter.Cursor
	}

	query += ` ORDER BY id DESC LIMIT :limit`

	return r.list(ctx, query, params)
}

func (r *paymentRepository) list(ctx context.Context, query string, params map[string]interface{}) ([]*payment.Payment, error) {
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var payments []*payment.Payment
	for rows.Next() {
		var p payment.Payment
		if err := rows.StructScan(&p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan payment").
				Mark(ierr.ErrDatabase)
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate payments").
			Mark(ierr.ErrDatabase)
	}
	return payments, nil
}
