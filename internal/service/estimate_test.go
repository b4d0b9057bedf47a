package service

import (
	"encoding/json"
	"testing"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/tenant"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/testutil"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EstimateServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    EstimateService
	invoiceSvc InvoiceService
}

func TestEstimateService(t *testing.T) {
	suite.Run(t, new(EstimateServiceSuite))
}

func (s *EstimateServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	params := ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		EffectPublisher: s.GetPublisher(),
		JobRepo:         stores.JobRepo,
		EstimateRepo:    stores.EstimateRepo,
		InvoiceRepo:     stores.InvoiceRepo,
		LineItemRepo:    stores.LineItemRepo,
		PaymentRepo:     stores.PaymentRepo,
		CustomerRepo:    stores.CustomerRepo,
		TenantRepo:      stores.TenantRepo,
	}
	s.service = NewEstimateService(params)
	s.invoiceSvc = NewInvoiceService(params)

	s.seedTenant(types.DefaultTenantID, "EST", "INV", decimal.NewFromFloat(8.25))
}

func (s *EstimateServiceSuite) seedTenant(id, estPrefix, invPrefix string, taxRate decimal.Decimal) {
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), &tenant.Tenant{
		ID:                 id,
		Name:               "Acme Field Services",
		EstimatePrefix:     estPrefix,
		InvoicePrefix:      invPrefix,
		EstimateNextNumber: 1,
		InvoiceNextNumber:  1,
		TaxRate:            taxRate,
		Status:             types.StatusPublished,
		CreatedAt:          s.GetNow(),
		UpdatedAt:          s.GetNow(),
	}))
}

func (s *EstimateServiceSuite) seedJob(status types.JobStatus) *job.Job {
	j := &job.Job{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		CustomerID: "cust_1",
		Title:      "Furnace tune-up",
		JobStatus:  status,
		Priority:   types.JobPriorityNormal,
		Version:    1,
		BaseModel:  types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().JobRepo.Create(s.GetContext(), j))
	return j
}

func (s *EstimateServiceSuite) createEstimate() *dto.EstimateResponse {
	resp, err := s.service.CreateEstimate(s.GetContext(), &dto.CreateEstimateRequest{
		CustomerID: "cust_1",
		LineItems: []dto.LineItemRequest{
			{Description: "Labor", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), Taxable: lo.ToPtr(true)},
			{Description: "Permit fee", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50), Taxable: lo.ToPtr(false)},
		},
		Discount: decimal.NewFromInt(20),
	})
	s.NoError(err)
	return resp
}

func (s *EstimateServiceSuite) sentEstimate() *dto.EstimateResponse {
	created := s.createEstimate()
	sent, err := s.service.SendEstimate(s.GetContext(), created.ID)
	s.NoError(err)
	return sent
}

func (s *EstimateServiceSuite) TestCreateEstimate_FreezesTotals() {
	resp := s.createEstimate()

	// 200 taxable + 50 exempt, 20 discount against the taxable base,
	// 8.25% on the remaining 180
	s.True(resp.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal %s", resp.Subtotal)
	s.True(resp.DiscountAmount.Equal(decimal.NewFromInt(20)))
	s.True(resp.TaxAmount.Equal(decimal.NewFromFloat(14.85)), "tax %s", resp.TaxAmount)
	s.True(resp.Total.Equal(decimal.NewFromFloat(244.85)), "total %s", resp.Total)

	s.Equal(types.EstimateStatusDraft, resp.EstimateStatus)
	s.Equal("EST-0001", resp.EstimateNumber)
	s.NotEmpty(resp.Meta.PortalToken)
	s.Len(resp.LineItems, 2)
	s.True(resp.LineItems[0].Total.Equal(decimal.NewFromInt(200)))
}

func (s *EstimateServiceSuite) TestCreateEstimate_OmittedTaxableFlagChargesTax() {
	// a request that never mentions the flag taxes every line
	var req dto.CreateEstimateRequest
	s.NoError(json.Unmarshal([]byte(`{
		"customer_id": "cust_1",
		"line_items": [
			{"description": "Labor", "quantity": "1", "unit_price": "100"}
		]
	}`), &req))

	resp, err := s.service.CreateEstimate(s.GetContext(), &req)
	s.NoError(err)
	s.True(resp.TaxAmount.Equal(decimal.NewFromFloat(8.25)), "tax %s", resp.TaxAmount)
	s.True(resp.Total.Equal(decimal.NewFromFloat(108.25)), "total %s", resp.Total)
	s.True(resp.LineItems[0].Taxable)
}

func (s *EstimateServiceSuite) TestCreateEstimate_RequiresLineItems() {
	_, err := s.service.CreateEstimate(s.GetContext(), &dto.CreateEstimateRequest{
		CustomerID: "cust_1",
		LineItems:  []dto.LineItemRequest{},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *EstimateServiceSuite) TestEstimateNumbering_Sequential() {
	first := s.createEstimate()
	second := s.createEstimate()
	third := s.createEstimate()

	s.Equal("EST-0001", first.EstimateNumber)
	s.Equal("EST-0002", second.EstimateNumber)
	s.Equal("EST-0003", third.EstimateNumber)
}

func (s *EstimateServiceSuite) TestEstimateNumbering_PerTenant() {
	s.seedTenant("tenant_other", "QTE", "BILL", decimal.Zero)

	first := s.createEstimate()
	s.Equal("EST-0001", first.EstimateNumber)

	otherCtx := testutil.SetupContextForTenant("tenant_other")
	other, err := s.service.CreateEstimate(otherCtx, &dto.CreateEstimateRequest{
		CustomerID: "cust_9",
		LineItems: []dto.LineItemRequest{
			{Description: "Consult", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(75)},
		},
	})
	s.NoError(err)
	s.Equal("QTE-0001", other.EstimateNumber)

	second := s.createEstimate()
	s.Equal("EST-0002", second.EstimateNumber)
}

func (s *EstimateServiceSuite) TestSendEstimate() {
	created := s.createEstimate()

	sent, err := s.service.SendEstimate(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.EstimateStatusSent, sent.EstimateStatus)
	s.NotNil(sent.SentAt)

	// sending twice is rejected
	_, err = s.service.SendEstimate(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *EstimateServiceSuite) TestViewEstimateByToken_Idempotent() {
	sent := s.sentEstimate()

	viewed, err := s.service.ViewEstimateByToken(s.GetContext(), sent.PortalToken)
	s.NoError(err)
	s.Equal(types.EstimateStatusViewed, viewed.EstimateStatus)
	s.NotNil(viewed.ViewedAt)
	firstViewedAt := *viewed.ViewedAt

	again, err := s.service.ViewEstimateByToken(s.GetContext(), sent.PortalToken)
	s.NoError(err)
	s.Equal(firstViewedAt, *again.ViewedAt)
}

func (s *EstimateServiceSuite) TestViewEstimateByToken_UnknownToken() {
	_, err := s.service.ViewEstimateByToken(s.GetContext(), "tok_bogus")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *EstimateServiceSuite) TestApproveEstimate() {
	sent := s.sentEstimate()

	sig := "J. Customer"
	approved, err := s.service.ApproveEstimate(s.GetContext(), sent.ID, &dto.ApproveEstimateRequest{Signature: &sig})
	s.NoError(err)
	s.Equal(types.EstimateStatusApproved, approved.EstimateStatus)
	s.NotNil(approved.ApprovedAt)
	s.Equal(&sig, approved.Signature)
	s.False(approved.Meta.JobForwarded)
}

func (s *EstimateServiceSuite) TestApproveEstimate_DraftRejected() {
	created := s.createEstimate()

	_, err := s.service.ApproveEstimate(s.GetContext(), created.ID, nil)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *EstimateServiceSuite) TestApproveEstimate_ForwardsLinkedJob() {
	j := s.seedJob(types.JobStatusEstimated)
	created, err := s.service.CreateEstimate(s.GetContext(), &dto.CreateEstimateRequest{
		CustomerID: "cust_1",
		JobID:      &j.ID,
		LineItems: []dto.LineItemRequest{
			{Description: "Labor", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), Taxable: lo.ToPtr(true)},
		},
	})
	s.NoError(err)
	_, err = s.service.SendEstimate(s.GetContext(), created.ID)
	s.NoError(err)

	approved, err := s.service.ApproveEstimate(s.GetContext(), created.ID, nil)
	s.NoError(err)
	s.True(approved.Meta.JobForwarded)

	got, err := s.GetStores().JobRepo.Get(s.GetContext(), j.ID)
	s.NoError(err)
	s.Equal(types.JobStatusApproved, got.JobStatus)

	history, err := s.GetStores().JobRepo.ListHistory(s.GetContext(), j.ID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(types.JobStatusEstimated, history[0].FromStatus)
	s.Equal(types.JobStatusApproved, history[0].ToStatus)
}

func (s *EstimateServiceSuite) TestApproveEstimate_IllegalForwardSkippedSilently() {
	j := s.seedJob(types.JobStatusInProgress)
	created, err := s.service.CreateEstimate(s.GetContext(), &dto.CreateEstimateRequest{
		CustomerID: "cust_1",
		JobID:      &j.ID,
		LineItems: []dto.LineItemRequest{
			{Description: "Labor", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), Taxable: lo.ToPtr(true)},
		},
	})
	s.NoError(err)
	_, err = s.service.SendEstimate(s.GetContext(), created.ID)
	s.NoError(err)

	approved, err := s.service.ApproveEstimate(s.GetContext(), created.ID, nil)
	s.NoError(err)
	s.Equal(types.EstimateStatusApproved, approved.EstimateStatus)
	s.False(approved.Meta.JobForwarded)

	got, err := s.GetStores().JobRepo.Get(s.GetContext(), j.ID)
	s.NoError(err)
	s.Equal(types.JobStatusInProgress, got.JobStatus)
}

func (s *EstimateServiceSuite) TestApproveEstimateByToken() {
	sent := s.sentEstimate()

	// token approval runs with no tenant on the context
	portalCtx := testutil.SetupContextForTenant("")
	approved, err := s.service.ApproveEstimateByToken(portalCtx, sent.PortalToken, nil)
	s.NoError(err)
	s.Equal(types.EstimateStatusApproved, approved.EstimateStatus)
}

func (s *EstimateServiceSuite) TestDeclineEstimate() {
	sent := s.sentEstimate()

	reason := "went with another contractor"
	declined, err := s.service.DeclineEstimate(s.GetContext(), sent.ID, &dto.DeclineEstimateRequest{Reason: &reason})
	s.NoError(err)
	s.Equal(types.EstimateStatusDeclined, declined.EstimateStatus)
	s.NotNil(declined.DeclinedAt)
	s.Equal(&reason, declined.DeclineReason)

	// a declined estimate cannot be approved afterwards
	_, err = s.service.ApproveEstimate(s.GetContext(), sent.ID, nil)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *EstimateServiceSuite) TestConvertToInvoice() {
	sent := s.sentEstimate()
	approved, err := s.service.ApproveEstimate(s.GetContext(), sent.ID, nil)
	s.NoError(err)

	converted, err := s.service.ConvertToInvoice(s.GetContext(), approved.ID)
	s.NoError(err)
	s.Equal(types.EstimateStatusConverted, converted.EstimateStatus)
	s.NotEmpty(converted.Meta.InvoiceID)
	s.Equal("INV-0001", converted.Meta.InvoiceNumber)

	inv, err := s.invoiceSvc.GetInvoice(s.GetContext(), converted.Meta.InvoiceID)
	s.NoError(err)
	s.True(inv.Total.Equal(converted.Total))
	s.True(inv.Subtotal.Equal(converted.Subtotal))
	s.True(inv.TaxAmount.Equal(converted.TaxAmount))
	s.True(inv.AmountDue.Equal(converted.Total))
	s.True(inv.AmountPaid.IsZero())
	s.Equal(&converted.ID, inv.EstimateID)

	s.Len(inv.LineItems, len(converted.LineItems))
	for i, item := range inv.LineItems {
		s.Equal(converted.LineItems[i].Description, item.Description)
		s.True(item.Total.Equal(converted.LineItems[i].Total))
		s.Equal(&inv.ID, item.InvoiceID)
		s.Nil(item.EstimateID)
	}
}

func (s *EstimateServiceSuite) TestConvertToInvoice_OnlyOnce() {
	sent := s.sentEstimate()
	_, err := s.service.ApproveEstimate(s.GetContext(), sent.ID, nil)
	s.NoError(err)

	_, err = s.service.ConvertToInvoice(s.GetContext(), sent.ID)
	s.NoError(err)

	_, err = s.service.ConvertToInvoice(s.GetContext(), sent.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *EstimateServiceSuite) TestConvertToInvoice_MidTransactionFailureLeavesNoWrites() {
	sent := s.sentEstimate()
	_, err := s.service.ApproveEstimate(s.GetContext(), sent.ID, nil)
	s.NoError(err)

	// the estimate status write is the last write in the conversion
	// transaction; failing it must also undo the invoice insert, the
	// copied line items and the number allocation
	estStore := s.GetStores().EstimateRepo.(*testutil.InMemoryEstimateStore)
	estStore.FailNextUpdate = ierr.NewError("connection reset").Mark(ierr.ErrDatabase)

	_, err = s.service.ConvertToInvoice(s.GetContext(), sent.ID)
	s.Error(err)

	got, err := s.GetStores().EstimateRepo.Get(s.GetContext(), sent.ID)
	s.NoError(err)
	s.Equal(types.EstimateStatusApproved, got.EstimateStatus)
	s.Nil(got.InvoiceID)

	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), types.DocumentFilter{})
	s.NoError(err)
	s.Empty(invoices)

	items, err := s.GetStores().LineItemRepo.ListByEstimate(s.GetContext(), sent.ID)
	s.NoError(err)
	s.Len(items, 2)

	// the retry succeeds and still receives the first invoice number
	converted, err := s.service.ConvertToInvoice(s.GetContext(), sent.ID)
	s.NoError(err)
	s.Equal("INV-0001", converted.Meta.InvoiceNumber)
}

func (s *EstimateServiceSuite) TestConvertToInvoice_RequiresApproval() {
	sent := s.sentEstimate()

	_, err := s.service.ConvertToInvoice(s.GetContext(), sent.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}
