package testutil

import (
	"context"
	"time"

	"github.com/billyribeiro-ux/fieldforge/internal/config"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/customer"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/invoice"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/payment"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/tenant"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	JobRepo      job.Repository
	EstimateRepo estimate.Repository
	InvoiceRepo  invoice.Repository
	LineItemRepo lineitem.Repository
	PaymentRepo  payment.Repository
	CustomerRepo customer.Repository
	TenantRepo   tenant.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	stores    Stores
	publisher *InMemoryEffectPublisher
	db        postgres.IClient
	logger    *logger.Logger
	config    *config.Configuration
	now       time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelError

	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = SetupContext()
}

func (s *BaseServiceTestSuite) setupStores() {
	jobStore := NewInMemoryJobStore()
	estimateStore := NewInMemoryEstimateStore()
	invoiceStore := NewInMemoryInvoiceStore()
	lineItemStore := NewInMemoryLineItemStore()
	paymentStore := NewInMemoryPaymentStore()
	customerStore := NewInMemoryCustomerStore()
	tenantStore := NewInMemoryTenantStore()

	s.stores = Stores{
		JobRepo:      jobStore,
		EstimateRepo: estimateStore,
		InvoiceRepo:  invoiceStore,
		LineItemRepo: lineItemStore,
		PaymentRepo:  paymentStore,
		CustomerRepo: customerStore,
		TenantRepo:   tenantStore,
	}
	s.db = NewInMemoryClient(s.logger,
		jobStore, estimateStore, invoiceStore, lineItemStore,
		paymentStore, customerStore, tenantStore)
	s.publisher = NewInMemoryEffectPublisher()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPublisher returns the capturing effect publisher
func (s *BaseServiceTestSuite) GetPublisher() *InMemoryEffectPublisher {
	return s.publisher
}

// GetDB returns the serializing transaction client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the suite's reference time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
