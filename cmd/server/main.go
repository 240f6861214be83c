package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fuelbooks/internal/config"
	"fuelbooks/internal/handler"
	"fuelbooks/internal/logger"
	"fuelbooks/internal/oracle"
	"fuelbooks/internal/port"
	"fuelbooks/internal/repository/postgres"
	"fuelbooks/internal/router"
	"fuelbooks/internal/service"
	s3storage "fuelbooks/internal/storage/s3"
)

const shutdownTimeout = 15 * time.Second

// @title Fuelbooks API
// @version 1.0
// @description GST line tax, purchase-order reconciliation and threshold-split sales export for fuel stations.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log, cfg.Server.Environment)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	txnRepo := postgres.NewTransactionRepo(db)
	salesRepo := postgres.NewSalesRecordRepo(db)

	// Initialize storage (export archive only)
	var storage port.ObjectStorage
	if cfg.Export.Archive {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Authoritative tax service is optional; without it lines stay local.
	var taxOracle port.TaxOracle
	if cfg.Oracle.Enabled {
		taxOracle = oracle.NewClient(&cfg.Oracle)
		zl.Info("authoritative tax service enabled", zap.String("url", cfg.Oracle.URL))
	}

	// Initialize services
	validator := service.NewTokenValidator(&cfg.JWT)
	poSvc := service.NewPurchaseOrderService(cfg.Tax.HomeStateCode, zl.Named("purchase_order"))
	coordinator := service.NewLineTaxCoordinator(taxOracle, zl.Named("line_tax"), service.LineTaxCoordinatorConfig{
		OracleTimeout: time.Duration(cfg.Oracle.TimeoutSecs) * time.Second,
	})
	exportSvc := service.NewExportService(txnRepo, salesRepo, storage, service.ExportConfig{
		Threshold:   cfg.Export.ThresholdAmount,
		Concurrency: cfg.Export.Concurrency,
		Archive:     cfg.Export.Archive,
		Bucket:      cfg.S3.Bucket,
	}, zl.Named("export"))

	// Initialize handlers and router
	r := router.Setup(validator, router.Handlers{
		Tax:           handler.NewTaxHandler(poSvc),
		PurchaseOrder: handler.NewPurchaseOrderHandler(poSvc),
		DraftLine:     handler.NewDraftLineHandler(coordinator, poSvc),
		Export:        handler.NewExportHandler(exportSvc),
		Health:        handler.NewHealthHandler(db),
	}, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		zl.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	coordinator.Wait()
	zl.Info("server stopped")
	return nil
}
