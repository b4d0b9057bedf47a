package postgres

import (
	"context"

	"github.com/billyribeiro-ux/fieldforge/internal/domain/invoice"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/jmoiron/sqlx"
)

type invoiceRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

// NewInvoiceRepository creates a new instance of invoice repository
func NewInvoiceRepository(db postgres.IClient, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, invoice_number, customer_id, job_id, estimate_id, invoice_status,
			subtotal, discount_amount, tax_rate, tax_amount, total,
			amount_paid, amount_due, portal_token, notes, due_date,
			sent_at, viewed_at, paid_at, voided_at,
			tenant_id, status, created_at, updated_at, created_by, updated_by
		) VALUES (
			:id, :invoice_number, :customer_id, :job_id, :estimate_id, :invoice_status,
			:subtotal, :discount_amount, :tax_rate, :tax_amount, :total,
			:amount_paid, :amount_due, :portal_token, :notes, :due_date,
			:sent_at, :viewed_at, :paid_at, :voided_at,
			:tenant_id, :status, :created_at, :updated_at, :created_by, :updated_by
		)`

	r.logger.Debugw("creating invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"tenant_id", inv.TenantID,
	)

	if _, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, inv); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate locks the invoice row so concurrent payment recordings
// serialize on the same balance.
func (r *invoiceRepository) GetForUpdate(ctx context.Context, id string) (*invoice.Invoice, error) {
	return r.get(ctx, id, true)
}

func (r *invoiceRepository) get(ctx context.Context, id string, forUpdate bool) (*invoice.Invoice, error) {
	query := `
		SELECT * FROM invoices
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

	return r.getOne(ctx, query, params, id)
}

func (r *invoiceRepository) GetByToken(ctx context.Context, token string) (*invoice.Invoice, error) {
	query := `
		SELECT * FROM invoices
		WHERE portal_token = :portal_token
		AND status = :status`

	params := map[string]interface{}{
		"portal_token": token,
		"status":       types.StatusPublished,
	}

	return r.getOne(ctx, query, params, token)
}

func (r *invoiceRepository) getOne(ctx context.Context, query string, params map[string]interface{}, ref string) (*invoice.Invoice, error) {
	rows, err := sqlx.NamedQueryContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to query invoice").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ierr.NewError("invoice not found").
			WithHintf("Invoice %s was not found", ref).
			Mark(ierr.ErrNotFound)
	}

	var inv invoice.Invoice
	if err := rows.StructScan(&inv); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to scan invoice").
			Mark(ierr.ErrDatabase)
	}
	return &inv, nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET
			invoice_status = :invoice_status,
			notes = :notes,
			due_date = :due_date,
			sent_at = :sent_at,
			viewed_at = :viewed_at,
			voided_at = :voided_at,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":             inv.ID,
		"invoice_status": inv.InvoiceStatus,
		"notes":          inv.Notes,
		"due_date":       inv.DueDate,
		"sent_at":        inv.SentAt,
		"viewed_at":      inv.ViewedAt,
		"voided_at":      inv.VoidedAt,
		"updated_by":     types.GetUserID(ctx),
		"tenant_id":      inv.TenantID,
		"status":         types.StatusPublished,
	}

	return r.exec(ctx, query, params, inv.ID, "Failed to update invoice")
}

// UpdateAmounts writes only the payment-derived fields. Callers hold
// the row lock from GetForUpdate in the same transaction.
func (r *invoiceRepository) UpdateAmounts(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET
			amount_paid = :amount_paid,
			amount_due = :amount_due,
			invoice_status = :invoice_status,
			paid_at = :paid_at,
			updated_at = NOW(),
			updated_by = :updated_by
		WHERE id = :id
		AND tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"id":             inv.ID,
		"amount_paid":    inv.AmountPaid,
		"amount_due":     inv.AmountDue,
		"invoice_status": inv.InvoiceStatus,
		"paid_at":        inv.PaidAt,
		"updated_by":     types.GetUserID(ctx),
		"tenant_id":      inv.TenantID,
		"status":         types.StatusPublished,
	}

	r.logger.Debugw("updating invoice amounts",
		"invoice_id", inv.ID,
		"amount_paid", inv.AmountPaid,
		"amount_due", inv.AmountDue,
		"invoice_status", inv.InvoiceStatus,
	)

	return r.exec(ctx, query, params, inv.ID, "Failed to update invoice amounts")
}

func (r *invoiceRepository) exec(ctx context.Context, query string, params map[string]interface{}, id, hint string) error {
	result, err := sqlx.NamedExecContext(ctx, r.db.Querier(ctx), query, params)
	if err != nil {
		return ierr.WithError(err).
			WithHint(hint).
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to read affected rows").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("invoice not found").
			WithHintf("Invoice %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter types.DocumentFilter) ([]*invoice.Invoice, error) {
	query := `
		SELECT * FROM invoices
		WHERE tenant_id = :tenant_id
		AND status = :status`

	params := map[string]interface{}{
		"tenant_id": types.GetTenantID(ctx),
		"status":    types.StatusPublished,
		"limit":     filter.GetLimit(),
	}

	if filter.Status != "" {
		query += ` AND invoice_status = :invoice_status`
		params["invoice_status"] = filter.Status
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
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice
	for rows.Next() {
		var inv invoice.Invoice
		if err := rows.StructScan(&inv); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan invoice").
				Mark(ierr.ErrDatabase)
		}
		invoices = append(invoices, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate invoices").
			Mark(ierr.ErrDatabase)
	}
	return invoices, nil
}
