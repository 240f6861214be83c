package main

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fuelbooks/internal/config"
	"fuelbooks/internal/domain"
	"fuelbooks/internal/logger"
	"fuelbooks/internal/port"
	"fuelbooks/internal/repository/postgres"
	"fuelbooks/internal/service"
	s3storage "fuelbooks/internal/storage/s3"
)

// rangeFlags are the --from/--to flags shared by every subcommand.
type rangeFlags struct {
	from   string
	to     string
	format string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "First day of the period (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "Last day of the period, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.format, "format", "o", formatTable, "Output format: table, csv or yaml")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// dateRange turns the inclusive calendar days into the half-open window.
func (f *rangeFlags) dateRange() (domain.DateRange, error) {
	from, err := time.Parse(time.DateOnly, f.from)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid --from %q: must be YYYY-MM-DD", f.from)
	}
	to, err := time.Parse(time.DateOnly, f.to)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("invalid --to %q: must be YYYY-MM-DD", f.to)
	}
	r := domain.DateRange{From: from, To: to.AddDate(0, 0, 1)}
	if err := r.Validate(); err != nil {
		return domain.DateRange{}, fmt.Errorf("--to must not be before --from: %w", err)
	}
	return r, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fuelctl",
		Short: "Preview and run threshold-split sales exports",
		Long: `fuelctl groups a period's POS transactions by product, payment method and
credit customer, splits every group above the configured threshold into
invoice lines, and either prints the plan or writes the lines as sales
records.

Configuration is read from FUELBOOKS_* environment variables.

Examples:
  fuelctl plan --from 2024-04-01 --to 2024-04-30
  fuelctl plan --from 2024-04-01 --to 2024-04-30 -o yaml
  fuelctl export --from 2024-04-01 --to 2024-04-30`,
		SilenceUsage: true,
	}
	root.AddCommand(newPlanCmd(), newExportCmd())
	return root
}

// app is what a subcommand needs to reach the export service.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	db     *sqlx.DB
	export service.ExportService
}

func (a *app) Close() {
	_ = a.log.Sync()
	_ = a.db.Close()
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log, cfg.Server.Environment)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var storage port.ObjectStorage
	if cfg.Export.Archive {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	exportSvc := service.NewExportService(
		postgres.NewTransactionRepo(db),
		postgres.NewSalesRecordRepo(db),
		storage,
		service.ExportConfig{
			Threshold:   cfg.Export.ThresholdAmount,
			Concurrency: cfg.Export.Concurrency,
			Archive:     cfg.Export.Archive,
			Bucket:      cfg.S3.Bucket,
		},
		zl.Named("export"),
	)

	return &app{cfg: cfg, log: zl, db: db, export: exportSvc}, nil
}
