package service

import (
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
	"github.com/billyribeiro-ux/fieldforge/internal/publisher"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	EffectPublisher publisher.EffectPublisher

	// Repositories
	JobRepo      job.Repository
	EstimateRepo estimate.Repository
	InvoiceRepo  invoice.Repository
	LineItemRepo lineitem.Repository
	PaymentRepo  payment.Repository
	CustomerRepo customer.Repository
	TenantRepo   tenant.Repository
}
