package service

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/money"
	"github.com/billyribeiro-ux/fieldforge/internal/publisher"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
)

// EstimateService manages the draft/send/approve/decline/convert flow
type EstimateService interface {
	CreateEstimate(ctx context.Context, req *dto.CreateEstimateRequest) (*dto.EstimateResponse, error)
	GetEstimate(ctx context.Context, id string) (*dto.EstimateResponse, error)
	ListEstimates(ctx context.Context, filter types.DocumentFilter) (*dto.ListEstimatesResponse, error)
	SendEstimate(ctx context.Context, id string) (*dto.EstimateResponse, error)
	ApproveEstimate(ctx context.Context, id string, req *dto.ApproveEstimateRequest) (*dto.EstimateResponse, error)
	DeclineEstimate(ctx context.Context, id string, req *dto.DeclineEstimateRequest) (*dto.EstimateResponse, error)
	ConvertToInvoice(ctx context.Context, id string) (*dto.EstimateResponse, error)

	// Portal operations resolve the document by its unguessable token
	// and carry no tenant context of their own.
	ViewEstimateByToken(ctx context.Context, token string) (*dto.EstimateResponse, error)
	ApproveEstimateByToken(ctx context.Context, token string, req *dto.ApproveEstimateRequest) (*dto.EstimateResponse, error)
	DeclineEstimateByToken(ctx context.Context, token string, req *dto.DeclineEstimateRequest) (*dto.EstimateResponse, error)
}

type estimateService struct {
	ServiceParams
}

// NewEstimateService creates a new estimate service
func NewEstimateService(params ServiceParams) EstimateService {
	return &estimateService{ServiceParams: params}
}

// CreateEstimate computes and freezes document totals, allocates the
// next tenant-scoped estimate number and writes the document with its
// line items in one transaction.
func (s *estimateService) CreateEstimate(ctx context.Context, req *dto.CreateEstimateRequest) (*dto.EstimateResponse, error) {
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

	e := &estimate.Estimate{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ESTIMATE),
		CustomerID:     req.CustomerID,
		JobID:          req.JobID,
		PropertyID:     req.PropertyID,
		EstimateStatus: types.EstimateStatusDraft,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountTotal,
		TaxRate:        t.TaxRate,
		TaxAmount:      totals.TaxTotal,
		Total:          totals.Total,
		PortalToken:    types.GeneratePortalToken(),
		Notes:          req.Notes,
		ValidUntil:     req.ValidUntil,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}

	var items []*lineitem.LineItem
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		number, err := s.TenantRepo.NextDocumentNumber(ctx, types.DocumentKindEstimate)
		if err != nil {
			return err
		}
		e.EstimateNumber = number

		if err := s.EstimateRepo.Create(ctx, e); err != nil {
			return err
		}

		items = buildLineItems(ctx, req.LineItems, &e.ID, nil)
		return s.LineItemRepo.CreateBulk(ctx, items)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created estimate",
		"estimate_id", e.ID,
		"estimate_number", e.EstimateNumber,
		"total", e.Total,
		"tenant_id", e.TenantID,
	)
	return &dto.EstimateResponse{
		Estimate:  e,
		LineItems: items,
		Meta:      &dto.EstimateResponseMeta{PortalToken: e.PortalToken},
	}, nil
}

func (s *estimateService) GetEstimate(ctx context.Context, id string) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withLineItems(ctx, e)
}

func (s *estimateService) withLineItems(ctx context.Context, e *estimate.Estimate) (*dto.EstimateResponse, error) {
	items, err := s.LineItemRepo.ListByEstimate(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	return &dto.EstimateResponse{Estimate: e, LineItems: items}, nil
}

func (s *estimateService) ListEstimates(ctx context.Context, filter types.DocumentFilter) (*dto.ListEstimatesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	estimates, err := s.EstimateRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		items = append(items, &dto.EstimateResponse{Estimate: e})
	}
	return &dto.ListEstimatesResponse{Items: items, Total: len(items)}, nil
}

func (s *estimateService) SendEstimate(ctx context.Context, id string) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.EstimateStatus != types.EstimateStatusDraft {
		return nil, ierr.NewErrorf("estimate %s is not in draft status", id).
			WithHintf("Only draft estimates can be sent, current status is %s", e.EstimateStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	e.SentAt = &now
	e.EstimateStatus = types.EstimateStatusSent
	if err := s.EstimateRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return s.withLineItems(ctx, e)
}

// ViewEstimateByToken stamps viewed_at once. Repeated portal opens are
// idempotent.
func (s *estimateService) ViewEstimateByToken(ctx context.Context, token string) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	ctx = types.SetTenantID(ctx, e.TenantID)

	if e.ViewedAt == nil {
		now := time.Now().UTC()
		e.ViewedAt = &now
		if e.EstimateStatus == types.EstimateStatusSent {
			e.EstimateStatus = types.EstimateStatusViewed
		}
		if err := s.EstimateRepo.Update(ctx, e); err != nil {
			return nil, err
		}
	}
	return s.withLineItems(ctx, e)
}

func (s *estimateService) ApproveEstimate(ctx context.Context, id string, req *dto.ApproveEstimateRequest) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.approve(ctx, e, req)
}

func (s *estimateService) ApproveEstimateByToken(ctx context.Context, token string, req *dto.ApproveEstimateRequest) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	ctx = types.SetTenantID(ctx, e.TenantID)
	return s.approve(ctx, e, req)
}

// approve accepts the estimate and, when it references a job, forwards
// that job to approved only if the transition is currently legal. An
// illegal forward is skipped silently.
func (s *estimateService) approve(ctx context.Context, e *estimate.Estimate, req *dto.ApproveEstimateRequest) (*dto.EstimateResponse, error) {
	if !e.IsApprovable() {
		return nil, ierr.NewErrorf("estimate %s cannot be approved", e.ID).
			WithHintf("Only sent or viewed estimates can be approved, current status is %s", e.EstimateStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	e.ApprovedAt = &now
	e.EstimateStatus = types.EstimateStatusApproved
	if req != nil {
		e.Signature = req.Signature
	}

	var (
		forwarded  bool
		fromStatus types.JobStatus
	)
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.EstimateRepo.Update(ctx, e); err != nil {
			return err
		}

		if e.JobID == nil {
			return nil
		}

		j, err := s.JobRepo.GetForUpdate(ctx, *e.JobID)
		if err != nil {
			return err
		}
		if !job.CanTransition(j.JobStatus, types.JobStatusApproved) {
			return nil
		}

		fromStatus = j.JobStatus
		history := &job.StatusHistory{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB_STATUS_HISTORY),
			JobID:      j.ID,
			FromStatus: j.JobStatus,
			ToStatus:   types.JobStatusApproved,
			ChangedBy:  types.GetUserID(ctx),
			TenantID:   j.TenantID,
			CreatedAt:  now,
		}
		if err := s.JobRepo.InsertHistory(ctx, history); err != nil {
			return err
		}

		j.JobStatus = types.JobStatusApproved
		if err := s.JobRepo.UpdateStatus(ctx, j); err != nil {
			return err
		}
		forwarded = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if forwarded {
		effects := job.TransitionEffects(fromStatus, types.JobStatusApproved)
		if len(effects) > 0 {
			event := publisher.NewEffectEvent(ctx, *e.JobID, fromStatus, types.JobStatusApproved, effects)
			if err := s.EffectPublisher.PublishEffects(ctx, event); err != nil {
				s.Logger.Errorw("failed to dispatch transition effects",
					"job_id", *e.JobID,
					"error", err,
				)
			}
		}
	}

	s.Logger.Infow("estimate approved",
		"estimate_id", e.ID,
		"job_forwarded", forwarded,
	)

	resp, err := s.withLineItems(ctx, e)
	if err != nil {
		return nil, err
	}
	resp.Meta = &dto.EstimateResponseMeta{JobForwarded: forwarded}
	return resp, nil
}

func (s *estimateService) DeclineEstimate(ctx context.Context, id string, req *dto.DeclineEstimateRequest) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decline(ctx, e, req)
}

func (s *estimateService) DeclineEstimateByToken(ctx context.Context, token string, req *dto.DeclineEstimateRequest) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	ctx = types.SetTenantID(ctx, e.TenantID)
	return s.decline(ctx, e, req)
}

func (s *estimateService) decline(ctx context.Context, e *estimate.Estimate, req *dto.DeclineEstimateRequest) (*dto.EstimateResponse, error) {
	if !e.IsApprovable() {
		return nil, ierr.NewErrorf("estimate %s cannot be declined", e.ID).
			WithHintf("Only sent or viewed estimates can be declined, current status is %s", e.EstimateStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	now := time.Now().UTC()
	e.DeclinedAt = &now
	e.EstimateStatus = types.EstimateStatusDeclined
	if req != nil {
		e.DeclineReason = req.Reason
	}

	if err := s.EstimateRepo.Update(ctx, e); err != nil {
		return nil, err
	}

	s.Logger.Infow("estimate declined", "estimate_id", e.ID)
	return s.withLineItems(ctx, e)
}

// ConvertToInvoice creates the invoice 1:1 from the approved estimate,
// copying frozen totals and every line item, inside one transaction.
// An estimate converts at most once.
func (s *estimateService) ConvertToInvoice(ctx context.Context, id string) (*dto.EstimateResponse, error) {
	e, err := s.EstimateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if e.EstimateStatus != types.EstimateStatusApproved {
		return nil, ierr.NewErrorf("estimate %s cannot be converted", id).
			WithHintf("Only approved estimates can be converted, current status is %s", e.EstimateStatus).
			Mark(ierr.ErrInvalidOperation)
	}

	invoiceSvc := NewInvoiceService(s.ServiceParams)

	var meta *dto.EstimateResponseMeta
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		items, err := s.LineItemRepo.ListByEstimate(ctx, e.ID)
		if err != nil {
			return err
		}

		inv, err := invoiceSvc.CreateFromEstimate(ctx, e, items)
		if err != nil {
			return err
		}

		e.EstimateStatus = types.EstimateStatusConverted
		e.InvoiceID = &inv.ID
		if err := s.EstimateRepo.Update(ctx, e); err != nil {
			return err
		}

		meta = &dto.EstimateResponseMeta{
			InvoiceID:     inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("estimate converted to invoice",
		"estimate_id", e.ID,
		"invoice_id", meta.InvoiceID,
		"invoice_number", meta.InvoiceNumber,
	)

	resp, err := s.withLineItems(ctx, e)
	if err != nil {
		return nil, err
	}
	resp.Meta = meta
	return resp, nil
}

// buildLineItems materializes request lines for one owning document
func buildLineItems(ctx context.Context, reqs []dto.LineItemRequest, estimateID, invoiceID *string) []*lineitem.LineItem {
	items := make([]*lineitem.LineItem, 0, len(reqs))
	for i, req := range reqs {
		items = append(items, &lineitem.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_LINE_ITEM),
			EstimateID:  estimateID,
			InvoiceID:   invoiceID,
			Description: req.Description,
			Quantity:    req.Quantity,
			UnitPrice:   req.UnitPrice,
			Taxable:     req.IsTaxable(),
			Total:       money.LineTotal(req.Quantity, req.UnitPrice),
			SortOrder:   i,
			BaseModel:   types.GetDefaultBaseModel(ctx),
		})
	}
	return items
}
