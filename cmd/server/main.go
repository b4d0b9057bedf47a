package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/billyribeiro-ux/fieldforge/docs/swagger"
	"github.com/billyribeiro-ux/fieldforge/internal/api"
	v1 "github.com/billyribeiro-ux/fieldforge/internal/api/v1"
	"github.com/billyribeiro-ux/fieldforge/internal/config"
	"github.com/billyribeiro-ux/fieldforge/internal/consumer"
	"github.com/billyribeiro-ux/fieldforge/internal/logger"
	"github.com/billyribeiro-ux/fieldforge/internal/postgres"
	"github.com/billyribeiro-ux/fieldforge/internal/publisher"
	"github.com/billyribeiro-ux/fieldforge/internal/pubsub"
	kafkapubsub "github.com/billyribeiro-ux/fieldforge/internal/pubsub/kafka"
	memorypubsub "github.com/billyribeiro-ux/fieldforge/internal/pubsub/memory"
	"github.com/billyribeiro-ux/fieldforge/internal/repository"
	"github.com/billyribeiro-ux/fieldforge/internal/service"
	"github.com/billyribeiro-ux/fieldforge/internal/types"
	"github.com/gin-gonic/gin"
)

// @title FieldForge API
// @version 1.0
// @description Field service operations API
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		panic(err)
	}

	db, err := postgres.NewDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	ps, err := newPubSub(cfg, log)
	if err != nil {
		log.Fatalw("failed to create pubsub", "error", err)
	}
	defer ps.Close()

	repos := repository.NewRepositories(db, log)
	params := service.ServiceParams{
		Logger:          log,
		Config:          cfg,
		DB:              db,
		EffectPublisher: publisher.NewEffectPublisher(cfg, ps, log),
		JobRepo:         repos.Job,
		EstimateRepo:    repos.Estimate,
		InvoiceRepo:     repos.Invoice,
		LineItemRepo:    repos.LineItem,
		PaymentRepo:     repos.Payment,
		CustomerRepo:    repos.Customer,
		TenantRepo:      repos.Tenant,
	}

	jobSvc := service.NewJobService(params)
	estimateSvc := service.NewEstimateService(params)
	invoiceSvc := service.NewInvoiceService(params)
	paymentSvc := service.NewPaymentService(params)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mode := cfg.Deployment.Mode
	log.Infow("starting fieldforge", "mode", mode, "effects_backend", cfg.Effects.Backend)

	if mode == types.ModeLocal || mode == types.ModeConsumer {
		effectConsumer := consumer.NewEffectConsumer(cfg, ps, log)
		go func() {
			if err := effectConsumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Errorw("effect consumer stopped", "error", err)
			}
		}()
	}

	if mode == types.ModeConsumer {
		<-ctx.Done()
		log.Info("shutting down")
		return
	}

	if mode == types.ModeAPI {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := api.Handlers{
		Health:   v1.NewHealthHandler(log),
		Job:      v1.NewJobHandler(jobSvc, log),
		Estimate: v1.NewEstimateHandler(estimateSvc, log),
		Invoice:  v1.NewInvoiceHandler(invoiceSvc, paymentSvc, log),
		Payment:  v1.NewPaymentHandler(paymentSvc, log),
		Portal:   v1.NewPortalHandler(estimateSvc, invoiceSvc, log),
	}
	router := api.NewRouter(handlers)

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	go func() {
		log.Infow("http server listening", "address", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("http server shutdown failed", "error", err)
		os.Exit(1)
	}
}

func newPubSub(cfg *config.Configuration, log *logger.Logger) (pubsub.PubSub, error) {
	switch cfg.Effects.Backend {
	case types.KafkaPubSub:
		return kafkapubsub.NewPubSub(cfg, log)
	default:
		return memorypubsub.NewPubSub(log), nil
	}
}
