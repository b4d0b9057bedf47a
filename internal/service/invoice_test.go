package service

import (
	"sync"
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

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	stores := s.GetStores()
	s.service = NewInvoiceService(ServiceParams{
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
	})

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
		ID:                 "cust_1",
		Name:               "Pat Homeowner",
		LifetimeValue:      decimal.Zero,
		OutstandingBalance: decimal.NewFromInt(100),
		BaseModel:          types.GetDefaultBaseModel(s.GetContext()),
	}))
}

// createInvoice makes a zero-tax invoice totaling 100.00
func (s *InvoiceServiceSuite) createInvoice() *dto.InvoiceResponse {
	resp, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		CustomerID: "cust_1",
		LineItems: []dto.LineItemRequest{
			{Description: "Service call", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	})
	s.NoError(err)
	return resp
}

func (s *InvoiceServiceSuite) pay(invoiceID string, amount decimal.Decimal) (*dto.PaymentResponse, error) {
	return s.service.RecordPayment(s.GetContext(), invoiceID, &dto.RecordPaymentRequest{
		Amount: amount,
		Method: "card",
	})
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	resp := s.createInvoice()

	s.Equal("INV-0001", resp.InvoiceNumber)
	s.Equal(types.InvoiceStatusDraft, resp.InvoiceStatus)
	s.True(resp.Total.Equal(decimal.NewFromInt(100)))
	s.True(resp.AmountDue.Equal(decimal.NewFromInt(100)))
	s.True(resp.AmountPaid.IsZero())
	s.NotEmpty(resp.Meta.PortalToken)
	s.False(resp.DueDate.IsZero())
}

func (s *InvoiceServiceSuite) TestCreateInvoice_NoLineItems() {
	resp, err := s.service.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		CustomerID: "cust_1",
	})
	s.NoError(err)
	s.True(resp.Total.IsZero())
	s.True(resp.AmountDue.IsZero())

	// nothing is owed, so payments are rejected outright
	_, err = s.pay(resp.ID, decimal.NewFromInt(10))
	s.Error(err)
	s.True(ierr.IsBadRequest(err))
}

func (s *InvoiceServiceSuite) TestRecordPayment_Full() {
	inv := s.createInvoice()

	resp, err := s.pay(inv.ID, decimal.NewFromInt(100))
	s.NoError(err)
	s.Equal(types.PaymentStatusSucceeded, resp.PaymentStatus)
	s.Equal(types.InvoiceStatusPaid, resp.Meta.InvoiceStatus)
	s.True(resp.Meta.AmountDue.IsZero())

	got, err := s.service.GetInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, got.InvoiceStatus)
	s.True(got.AmountPaid.Equal(decimal.NewFromInt(100)))
	s.NotNil(got.PaidAt)
}

func (s *InvoiceServiceSuite) TestRecordPayment_Partial() {
	inv := s.createInvoice()

	resp, err := s.pay(inv.ID, decimal.NewFromInt(40))
	s.NoError(err)
	s.Equal(types.InvoiceStatusPartiallyPaid, resp.Meta.InvoiceStatus)
	s.True(resp.Meta.AmountDue.Equal(decimal.NewFromInt(60)))

	got, err := s.service.GetInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Nil(got.PaidAt)

	// a second partial settles it
	resp, err = s.pay(inv.ID, decimal.NewFromInt(60))
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, resp.Meta.InvoiceStatus)
}

func (s *InvoiceServiceSuite) TestRecordPayment_TipExcludedFromBalance() {
	inv := s.createInvoice()

	resp, err := s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Amount:    decimal.NewFromInt(100),
		TipAmount: decimal.NewFromInt(15),
		Method:    "card",
	})
	s.NoError(err)
	s.True(resp.NetAmount.Equal(decimal.NewFromInt(115)))

	// the tip never inflates amount_paid
	got, err := s.service.GetInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.True(got.AmountPaid.Equal(decimal.NewFromInt(100)))
	s.True(got.AmountDue.IsZero())
}

func (s *InvoiceServiceSuite) TestRecordPayment_Overpayment() {
	inv := s.createInvoice()

	_, err := s.pay(inv.ID, decimal.NewFromFloat(100.01))
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// nothing was written
	got, err := s.service.GetInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.True(got.AmountPaid.IsZero())
	payments, err := s.GetStores().PaymentRepo.ListByInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Empty(payments)
}

func (s *InvoiceServiceSuite) TestRecordPayment_InvalidRequest() {
	inv := s.createInvoice()

	_, err := s.pay(inv.ID, decimal.Zero)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.RecordPayment(s.GetContext(), inv.ID, &dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(10),
		Method: "barter",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InvoiceServiceSuite) TestRecordPayment_UpdatesCustomerAggregates() {
	inv := s.createInvoice()

	_, err := s.pay(inv.ID, decimal.NewFromInt(40))
	s.NoError(err)
	_, err = s.pay(inv.ID, decimal.NewFromInt(60))
	s.NoError(err)

	c, err := s.GetStores().CustomerRepo.Get(s.GetContext(), "cust_1")
	s.NoError(err)
	s.True(c.LifetimeValue.Equal(decimal.NewFromInt(100)))
	s.True(c.OutstandingBalance.IsZero())
}

func (s *InvoiceServiceSuite) TestVoidInvoice() {
	inv := s.createInvoice()

	voided, err := s.service.VoidInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusVoid, voided.InvoiceStatus)
	s.NotNil(voided.VoidedAt)

	_, err = s.pay(inv.ID, decimal.NewFromInt(10))
	s.Error(err)
	s.True(ierr.IsBadRequest(err))

	// voiding twice is rejected
	_, err = s.service.VoidInvoice(s.GetContext(), inv.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestSendInvoice() {
	inv := s.createInvoice()

	sent, err := s.service.SendInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, sent.InvoiceStatus)

	_, err = s.service.SendInvoice(s.GetContext(), inv.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *InvoiceServiceSuite) TestViewInvoiceByToken() {
	inv := s.createInvoice()
	_, err := s.service.SendInvoice(s.GetContext(), inv.ID)
	s.NoError(err)

	viewed, err := s.service.ViewInvoiceByToken(s.GetContext(), inv.Meta.PortalToken)
	s.NoError(err)
	s.Equal(types.InvoiceStatusViewed, viewed.InvoiceStatus)
	s.NotNil(viewed.ViewedAt)
}

// Two racing payments whose sum exceeds the balance: the row lock
// serializes them, so exactly one is accepted in full and the other
// fails the overpayment check against the fresh balance.
func (s *InvoiceServiceSuite) TestRecordPayment_ConcurrentOverlap() {
	inv := s.createInvoice()

	amounts := []decimal.Decimal{decimal.NewFromInt(60), decimal.NewFromInt(50)}
	errs := make([]error, len(amounts))

	var wg sync.WaitGroup
	for i, amount := range amounts {
		wg.Add(1)
		go func(i int, amount decimal.Decimal) {
			defer wg.Done()
			_, errs[i] = s.pay(inv.ID, amount)
		}(i, amount)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			s.True(ierr.IsValidation(err))
		}
	}
	s.Equal(1, accepted)

	got, err := s.service.GetInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.False(got.AmountDue.IsNegative())
	s.True(got.AmountPaid.LessThanOrEqual(got.Total))

	payments, err := s.GetStores().PaymentRepo.ListByInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Len(payments, 1)
}

// Five racing payments of 25 against a balance of 100: exactly four
// land, the balance never goes negative and the accepted payments sum
// to the invoice total.
func (s *InvoiceServiceSuite) TestRecordPayment_ConcurrentExactFill() {
	inv := s.createInvoice()

	const workers = 5
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.pay(inv.ID, decimal.NewFromInt(25))
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range errs {
		if err == nil {
			accepted++
		}
	}
	s.Equal(4, accepted)

	got, err := s.service.GetInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, got.InvoiceStatus)
	s.True(got.AmountDue.IsZero())
	s.True(got.AmountPaid.Equal(got.Total))

	payments, err := s.GetStores().PaymentRepo.ListByInvoice(s.GetContext(), inv.ID)
	s.NoError(err)
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	s.True(total.Equal(got.Total))
}
