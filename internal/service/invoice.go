package service

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/invoice"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/payment"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/money"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
)

// defaultDueDays is the payment window when no due date is supplied
const defaultDueDays = 30

// InvoiceService manages invoices and the payment recording transaction
type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	CreateFromEstimate(ctx context.Context, e *estimate.Estimate, items []*lineitem.LineItem) (*invoice.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, filter types.DocumentFilter) (*dto.ListInvoicesResponse, error)
	SendInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	VoidInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	RecordPayment(ctx context.Context, invoiceID string, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	ViewInvoiceByToken(ctx context.Context, token string) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	ServiceParams
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

// CreateInvoice creates an invoice directly. An invoice with no line
// items is permitted and starts settled with a zero balance.
func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TenantRepo.Get(ctx, types.GetTenantID(ctx))
	if err != nil {
		return nil, err
	}

	lines := make([]money.LineInput, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		lines = append(lines, money.LineInput{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Taxable:   item.IsTaxable(),
		})
	}
	totals := money.ComputeTotals(lines, req.Discount, t.TaxRate)

	dueDate := time.Now().UTC().AddDate(0, 0, defaultDueDays)
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	inv := &invoice.Invoice{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		CustomerID:     req.CustomerID,
		JobID:          req.JobID,
		InvoiceStatus:  types.InvoiceStatusDraft,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountTotal,
		TaxRate:        t.TaxRate,
		TaxAmount:      totals.TaxTotal,
		Total:          totals.Total,
		AmountPaid:     decimal.Zero,
		AmountDue:      totals.Total,
		PortalToken:    types.GeneratePortalToken(),
		Notes:          req.Notes,
		DueDate:        dueDate,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	var items []*lineitem.LineItem
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		number, err := s.TenantRepo.NextDocumentNumber(ctx, types.DocumentKindInvoice)
		if err != nil {
			return err
		}
		inv.InvoiceNumber = number

		if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
			return err
		}

		items = buildLineItems(ctx, req.LineItems, nil, &inv.ID)
		return s.LineItemRepo.CreateBulk(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"total", inv.Total,
		"tenant_id", inv.TenantID,
	)
	return &dto.InvoiceResponse{
		Invoice:   inv,
		LineItems: items,
		Meta:      &dto.InvoiceResponseMeta{PortalToken: inv.PortalToken},
	}, nil
}

// CreateFromEstimate copies the estimate's frozen totals and line items
// onto a new invoice. Runs inside the conversion transaction.
func (s *invoiceService) CreateFromEstimate(ctx context.Context, e *estimate.Estimate, items []*lineitem.LineItem) (*invoice.Invoice, error) {
	number, err := s.TenantRepo.NextDocumentNumber(ctx, types.DocumentKindInvoice)
	if err != nil {
		return nil, err
	}

	inv := &invoice.Invoice{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		InvoiceNumber:  number,
		CustomerID:     e.CustomerID,
		JobID:          e.JobID,
		EstimateID:     &e.ID,
		InvoiceStatus:  types.InvoiceStatusDraft,
		Subtotal:       e.Subtotal,
		DiscountAmount: e.DiscountAmount,
		TaxRate:        e.TaxRate,
		TaxAmount:      e.TaxAmount,
		Total:          e.Total,
		AmountPaid:     decimal.Zero,
		AmountDue:      e.Total,
		PortalToken:    types.GeneratePortalToken(),
		Notes:          e.Notes,
		DueDate:        time.Now().UTC().AddDate(0, 0, defaultDueDays),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	copied := make([]*lineitem.LineItem, 0, len(items))
	for _, item := range items {
		copied = append(copied, item.CopyForInvoice(ctx, inv.ID))
	}
	if err := s.LineItemRepo.CreateBulk(ctx, copied); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withLineItems(ctx, inv)
}

func (s *invoiceService) withLineItems(ctx context.Context, inv *invoice.Invoice) (*dto.InvoiceResponse, error) {
	items, err := s.LineItemRepo.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv, LineItems: items}, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, filter types.DocumentFilter) (*dto.ListInvoicesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, &dto.InvoiceResponse{Invoice: inv})
	}
	return &dto.ListInvoicesResponse{Items: items, Total: len(items)}, nil
}

func (s *invoiceService) SendInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus != types.InvoiceStatusDraft {
		return nil, ierr.NewErrorf("invoice %s is not in draft status", id).
			WithHintf("Only draft invoices can be sent, current status is %s", inv.InvoiceStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	inv.SentAt = &now
	inv.InvoiceStatus = types.InvoiceStatusSent
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return s.withLineItems(ctx, inv)
}

// VoidInvoice marks the invoice void. Recorded payments stay untouched;
// refunds are explicit operations on the payments themselves.
func (s *invoiceService) VoidInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.InvoiceStatus == types.InvoiceStatusVoid {
		return nil, ierr.NewErrorf("invoice %s is already void", id).
			WithHint("The invoice has already been voided").
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	inv.VoidedAt = &now
	inv.InvoiceStatus = types.InvoiceStatusVoid
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("invoice voided", "invoice_id", id)
	return s.withLineItems(ctx, inv)
}

func (s *invoiceService) ViewInvoiceByToken(ctx context.Context, token string) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	ctx = types.SetTenantID(ctx, inv.TenantID)

	if inv.ViewedAt == nil {
		now := time.Now().UTC()
		inv.ViewedAt = &now
		if inv.InvoiceStatus == types.InvoiceStatusSent {
			inv.InvoiceStatus = types.InvoiceStatusViewed
		}
		if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
			return nil, err
		}
	}
	return s.withLineItems(ctx, inv)
}

// RecordPayment is the concurrency-sensitive hot path. The invoice row
// is locked for the whole transaction so two simultaneous payments
// cannot both pass the overpayment check against a stale balance. The
// payment row, the invoice balance and the customer aggregates commit
// together or not at all.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		p   *payment.Payment
		inv *invoice.Invoice
	)
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		var err error
		inv, err = s.InvoiceRepo.GetForUpdate(ctx, invoiceID)
		if err != nil {
			return err
		}

		if inv.InvoiceStatus == types.InvoiceStatusVoid {
			return ierr.NewErrorf("invoice %s is void", invoiceID).
				WithHint("Payments cannot be recorded against a void invoice").
				Mark(ierr.ErrBadRequest)
		}
		if !inv.AmountDue.IsPositive() {
			return ierr.NewErrorf("invoice %s has no amount due", invoiceID).
				WithHint("The invoice is already settled").
				Mark(ierr.ErrBadRequest)
		}
		if req.Amount.GreaterThan(inv.AmountDue) {
			return ierr.NewErrorf("payment exceeds amount due on invoice %s", invoiceID).
				WithHintf("Payment amount %s exceeds the remaining balance %s", req.Amount, inv.AmountDue).
				WithReportableDetails(map[string]any{
					"amount":     req.Amount,
					"amount_due": inv.AmountDue,
				}).
				Mark(ierr.ErrValidation)
		}

		p = &payment.Payment{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
			InvoiceID:     inv.ID,
			CustomerID:    inv.CustomerID,
			Amount:        req.Amount,
			TipAmount:     req.TipAmount,
			NetAmount:     req.Amount.Add(req.TipAmount),
			Method:        types.PaymentMethod(req.Method),
			PaymentStatus: types.PaymentStatusSucceeded,
			Reference:     req.Reference,
			Notes:         req.Notes,
			BaseModel:     types.GetDefaultBaseModel(ctx),
		}
		if err := s.PaymentRepo.Create(ctx, p); err != nil {
			return err
		}

		inv.AmountPaid = inv.AmountPaid.Add(req.Amount)
		inv.AmountDue = inv.Total.Sub(inv.AmountPaid)
		if inv.AmountDue.IsPositive() {
			inv.InvoiceStatus = types.InvoiceStatusPartiallyPaid
		} else {
			inv.InvoiceStatus = types.InvoiceStatusPaid
			now := time.Now().UTC()
			inv.PaidAt = &now
		}
		if err := s.InvoiceRepo.UpdateAmounts(ctx, inv); err != nil {
			return err
		}

		return s.CustomerRepo.ApplyPaymentTotals(ctx, inv.CustomerID, req.Amount)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded payment",
		"payment_id", p.ID,
		"invoice_id", inv.ID,
		"amount", p.Amount,
		"invoice_status", inv.InvoiceStatus,
		"amount_due", inv.AmountDue,
	)
	return &dto.PaymentResponse{
		Payment: p,
		Meta: &dto.PaymentResponseMeta{
			InvoiceStatus: inv.InvoiceStatus,
			AmountDue:     &inv.AmountDue,
		},
	}, nil
}
