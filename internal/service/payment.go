package service

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// PaymentService exposes payment lookups and the explicit refund flow
type PaymentService interface {
	GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error)
	ListPayments(ctx context.Context, filter types.QueryFilter) (*dto.ListPaymentsResponse, error)
	ListInvoicePayments(ctx context.Context, invoiceID string) (*dto.ListPaymentsResponse, error)
	RefundPayment(ctx context.Context, id string, req *dto.RefundPaymentRequest) (*dto.PaymentResponse, error)
}

type paymentService struct {
	ServiceParams
}

// NewPaymentService creates a new payment service
func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

func (s *paymentService) GetPayment(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentResponse{Payment: p}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, filter types.QueryFilter) (*dto.ListPaymentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, &dto.PaymentResponse{Payment: p})
	}
	return &dto.ListPaymentsResponse{Items: items, Total: len(items)}, nil
}

func (s *paymentService) ListInvoicePayments(ctx context.Context, invoiceID string) (*dto.ListPaymentsResponse, error) {
	if _, err := s.InvoiceRepo.Get(ctx, invoiceID); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, &dto.PaymentResponse{Payment: p})
	}
	return &dto.ListPaymentsResponse{Items: items, Total: len(items)}, nil
}

// RefundPayment marks the payment refunded. The invoice balance is left
// untouched; a refund is bookkeeping on the payment row, not a reversal
// of the ledger.
func (s *paymentService) RefundPayment(ctx context.Context, id string, req *dto.RefundPaymentRequest) (*dto.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.PaymentStatus == types.PaymentStatusRefunded {
		return nil, ierr.NewErrorf("payment %s is already refunded", id).
			WithHint("The payment has already been refunded").
			Mark(ierr.ErrValidation)
	}

	refundAmount := p.Amount
	if req.Amount != nil {
		if req.Amount.GreaterThan(p.Amount) {
			return nil, ierr.NewErrorf("refund exceeds original payment %s", id).
				WithHintf("Refund amount %s exceeds the original payment amount %s", req.Amount, p.Amount).
				Mark(ierr.ErrValidation)
		}
		refundAmount = *req.Amount
	}

	now := time.Now().UTC()
	p.PaymentStatus = types.PaymentStatusRefunded
	p.RefundedAmount = &refundAmount
	p.RefundReason = &req.Reason
	p.RefundedAt = &now

	if err := s.PaymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("payment refunded",
		"payment_id", p.ID,
		"invoice_id", p.InvoiceID,
		"refunded_amount", refundAmount,
	)
	return &dto.PaymentResponse{Payment: p}, nil
}
