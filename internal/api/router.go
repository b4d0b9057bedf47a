package api

import (
	v1 "github.com/billyribeiro-ux/fieldforge/internal/api/v1"
	"github.com/billyribeiro-ux/fieldforge/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Job      *v1.JobHandler
	Estimate *v1.EstimateHandler
	Invoice  *v1.InvoiceHandler
	Payment  *v1.PaymentHandler
	Portal   *v1.PortalHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.Health.Health)

	// Customer portal routes resolve documents by token and carry no
	// tenant principal.
	portal := router.Group("/portal")
	{
		portal.GET("/estimates/:token", handlers.Portal.ViewEstimate)
		portal.POST("/estimates/:token/approve", handlers.Portal.ApproveEstimate)
		portal.POST("/estimates/:token/decline", handlers.Portal.DeclineEstimate)
		portal.GET("/invoices/:token", handlers.Portal.ViewInvoice)
	}

	// v1 routes require a tenant principal
	v1Group := router.Group("/v1")
	v1Group.Use(middleware.TenantMiddleware)
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", handlers.Job.CreateJob)
		jobs.GET("", handlers.Job.ListJobs)
		jobs.GET("/:id", handlers.Job.GetJob)
		jobs.PUT("/:id", handlers.Job.UpdateJob)
		jobs.GET("/:id/history", handlers.Job.GetJobHistory)
		jobs.POST("/:id/transition", handlers.Job.Transition)
	}

	estimates := router.Group("/estimates")
	{
		estimates.POST("", handlers.Estimate.CreateEstimate)
		estimates.GET("", handlers.Estimate.ListEstimates)
		estimates.GET("/:id", handlers.Estimate.GetEstimate)
		estimates.POST("/:id/send", handlers.Estimate.SendEstimate)
		estimates.POST("/:id/approve", handlers.Estimate.ApproveEstimate)
		estimates.POST("/:id/decline", handlers.Estimate.DeclineEstimate)
		estimates.POST("/:id/convert", handlers.Estimate.ConvertToInvoice)
	}

	invoices := router.Group("/invoices")
	{
		invoices.POST("", handlers.Invoice.CreateInvoice)
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.POST("/:id/send", handlers.Invoice.SendInvoice)
		invoices.POST("/:id/void", handlers.Invoice.VoidInvoice)
		invoices.POST("/:id/payments", handlers.Invoice.RecordPayment)
		invoices.GET("/:id/payments", handlers.Invoice.ListInvoicePayments)
	}

	payments := router.Group("/payments")
	{
		payments.GET("", handlers.Payment.ListPayments)
		payments.GET("/:id", handlers.Payment.GetPayment)
		payments.POST("/:id/refund", handlers.Payment.RefundPayment)
	}
}
