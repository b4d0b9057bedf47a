package service

import (
	"testing"

	"github.com/billyribeiro-ux/fieldforge/internal/api/dto"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/customer"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/tenant"
	ierr "github.com/billyribeiro-ux/fieldforge/internal/errors"
	"github.com/billyribeiro-ux/fieldforge/internal/testutil"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service    PaymentService
	invoiceSvc InvoiceService
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
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
	s.service = NewPaymentService(params)
	s.invoiceSvc = NewInvoiceService(params)

	s.NoError(stores.TenantRepo.Create(s.GetContext(), &tenant.Tenant{
		ID:                 types.DefaultTenantID,
		Name:               "Acme Field Services",
		EstimatePrefix:     "EST",
		InvoicePrefix:      "INV",
		EstimateNextNumber: 1,
		InvoiceNextNumber:  1,
		TaxRate:            decimal.Zero,
		Status:             types.StatusPublished,
		CreatedAt:          s.GetNow(),
		UpdatedAt:          s.GetNow(),
	}))
	s.NoError(stores.CustomerRepo.Create(s.GetContext(), &customer.Customer{
		ID:        "cust_1",
		Name:      "Pat Homeowner",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}))
}

// paidInvoice creates a 100.00 invoice and pays the given amount on it
func (s *PaymentServiceSuite) paidInvoice(amount decimal.Decimal) (invoiceID string, paymentID string) {
	inv, err := s.invoiceSvc.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		CustomerID: "cust_1",
		LineItems: []dto.LineItemRequest{
			{Description: "Service call", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	s.NoError(err)

	p, err := s.invoiceSvc.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Amount: amount,
		Method: "cash",
	})
	s.NoError(err)
	return inv.ID, p.ID
}

func (s *PaymentServiceSuite) TestGetPayment() {
	_, paymentID := s.paidInvoice(decimal.NewFromInt(100))

	resp, err := s.service.GetPayment(s.GetContext(), paymentID)
	s.NoError(err)
	s.True(resp.Amount.Equal(decimal.NewFromInt(100)))
	s.Equal(types.PaymentMethodCash, resp.Method)
	s.Equal(types.PaymentStatusSucceeded, resp.PaymentStatus)
}

func (s *PaymentServiceSuite) TestGetPayment_NotFound() {
	_, err := s.service.GetPayment(s.GetContext(), "pay_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestRefundPayment_Full() {
	invoiceID, paymentID := s.paidInvoice(decimal.NewFromInt(100))

	resp, err := s.service.RefundPayment(s.GetContext(), paymentID, &dto.RefundPaymentRequest{
		Reason: "duplicate charge",
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusRefunded, resp.PaymentStatus)
	s.True(resp.RefundedAmount.Equal(decimal.NewFromInt(100)))
	s.NotNil(resp.RefundedAt)

	// the invoice balance stays settled; refunds are not reversals
	inv, err := s.invoiceSvc.GetInvoice(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.True(inv.AmountDue.IsZero())
}

func (s *PaymentServiceSuite) TestRefundPayment_Partial() {
	_, paymentID := s.paidInvoice(decimal.NewFromInt(100))

	amount := decimal.NewFromInt(30)
	resp, err := s.service.RefundPayment(s.GetContext(), paymentID, &dto.RefundPaymentRequest{
		Amount: &amount,
		Reason: "goodwill credit",
	})
	s.NoError(err)
	s.Equal(types.PaymentStatusRefunded, resp.PaymentStatus)
	s.True(resp.RefundedAmount.Equal(amount))
}

func (s *PaymentServiceSuite) TestRefundPayment_Twice() {
	_, paymentID := s.paidInvoice(decimal.NewFromInt(100))

	_, err := s.service.RefundPayment(s.GetContext(), paymentID, &dto.RefundPaymentRequest{
		Reason: "duplicate charge",
	})
	s.NoError(err)

	_, err = s.service.RefundPayment(s.GetContext(), paymentID, &dto.RefundPaymentRequest{
		Reason: "duplicate charge",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestRefundPayment_ExceedsOriginal() {
	_, paymentID := s.paidInvoice(decimal.NewFromInt(50))

	amount := decimal.NewFromFloat(50.01)
	_, err := s.service.RefundPayment(s.GetContext(), paymentID, &dto.RefundPaymentRequest{
		Amount: &amount,
		Reason: "overcharge",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestRefundPayment_RequiresReason() {
	_, paymentID := s.paidInvoice(decimal.NewFromInt(100))

	_, err := s.service.RefundPayment(s.GetContext(), paymentID, &dto.RefundPaymentRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestListInvoicePayments() {
	invoiceID, _ := s.paidInvoice(decimal.NewFromInt(40))
	_, err := s.invoiceSvc.RecordPayment(s.GetContext(), invoiceID, &dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(60),
		Method: "check",
	})
	s.NoError(err)

	resp, err := s.service.ListInvoicePayments(s.GetContext(), invoiceID)
	s.NoError(err)
	s.Equal(2, resp.Total)
}

func (s *PaymentServiceSuite) TestListInvoicePayments_UnknownInvoice() {
	_, err := s.service.ListInvoicePayments(s.GetContext(), "inv_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
