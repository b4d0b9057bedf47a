package repository

import (
	"github.com/billyribeiro-ux/fieldforge/internal/domain/customer"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/estimate"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/invoice"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/job"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/lineitem"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/payment"
	"github.com/billyribeiro-ux/fieldforge/internal/domain/tenant"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	pgclient "github.com/billyribeiro-ux/fieldforge/internal/postgres"
	pgrepo "github.com/billyribeiro-ux/fieldforge/internal/repository/postgres"
)

// Repositories bundles every repository implementation over one client
type Repositories struct {
	Job      job.Repository
	Estimate estimate.Repository
	Invoice  invoice.Repository
	LineItem lineitem.Repository
	Payment  payment.Repository
	Customer customer.Repository
	Tenant   tenant.Repository
}

// NewRepositories wires the postgres repositories
func NewRepositories(db pgclient.IClient, logger *logger.Logger) *Repositories {
	return &Repositories{
		Job:      pgrepo.NewJobRepository(db, logger),
		Estimate: pgrepo.NewEstimateRepository(db, logger),
		Invoice:  pgrepo.NewInvoiceRepository(db, logger),
		LineItem: pgrepo.NewLineItemRepository(db, logger),
		Payment:  pgrepo.NewPaymentRepository(db, logger),
		Customer: pgrepo.NewCustomerRepository(db, logger),
		Tenant:   pgrepo.NewTenantRepository(db, logger),
	}
}
