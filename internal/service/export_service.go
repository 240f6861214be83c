package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/invoicesplit"
	"fuelbooks/internal/logger"
	"fuelbooks/internal/port"
	"fuelbooks/internal/xlsxexport"
)

const (
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	archiveLinkLifetime = int64(24 * 60 * 60)
)

// ExportConfig holds settings for the sales export.
type ExportConfig struct {
	Threshold   decimal.Decimal
	Concurrency int
	Archive     bool
	Bucket      string
}

// LineOutcome is what happened to one split line handed to the sink.
type LineOutcome struct {
	ProductID     uuid.UUID               `json:"product_id"`
	ProductName   string                  `json:"product_name"`
	SequenceIndex int                     `json:"sequence_index"`
	Amount        decimal.Decimal         `json:"amount"`
	SalesRecordID uuid.UUID               `json:"sales_record_id"`
	Status        domain.ExportLineStatus `json:"status"`
	Error         string                  `json:"error,omitempty"`
}

// ExportResult summarises one export run.
type ExportResult struct {
	BatchID    uuid.UUID          `json:"batch_id"`
	Range      domain.DateRange   `json:"range"`
	Plan       *invoicesplit.Plan `json:"plan"`
	Lines      []LineOutcome      `json:"lines"`
	Created    int                `json:"created"`
	Failed     int                `json:"failed"`
	ArchiveKey string             `json:"archive_key,omitempty"`
	ArchiveURL string             `json:"archive_url,omitempty"`
}

// ExportService turns a period of POS transactions into sales records.
type ExportService interface {
	Plan(ctx context.Context, r domain.DateRange) (*invoicesplit.Plan, error)
	Run(ctx context.Context, r domain.DateRange) (*ExportResult, error)
}

type exportService struct {
	txnRepo   port.TransactionRepository
	salesRepo port.SalesRecordRepository
	storage   port.ObjectStorage
	cfg       ExportConfig
	log       *zap.Logger
}

// NewExportService creates a new ExportService implementation. storage may
// be nil when archiving is disabled.
func NewExportService(
	txnRepo port.TransactionRepository,
	salesRepo port.SalesRecordRepository,
	storage port.ObjectStorage,
	cfg ExportConfig,
	log *zap.Logger,
) ExportService {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &exportService{
		txnRepo:   txnRepo,
		salesRepo: salesRepo,
		storage:   storage,
		cfg:       cfg,
		log:       log,
	}
}

func (s *exportService) Plan(ctx context.Context, r domain.DateRange) (*invoicesplit.Plan, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	records, err := s.txnRepo.ListByDateRange(ctx, r.From, r.To)
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	groups := invoicesplit.GroupTransactions(records)
	plan, err := invoicesplit.BuildPlan(groups, s.cfg.Threshold)
	if err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx, s.log)
	for i := range plan.Unsplittable {
		u := &plan.Unsplittable[i]
		log.Warn("transaction group needs manual invoicing",
			zap.String("product_id", u.Group.ProductID.String()),
			zap.String("payment_method_id", u.Group.PaymentMethodID.String()),
			zap.String("total_amount", u.Group.TotalAmount.StringFixed(2)),
			zap.String("reason", u.Reason),
		)
	}
	log.Info("split plan built",
		zap.Int("transactions", len(records)),
		zap.Int("groups", len(groups)),
		zap.Int("lines", plan.LineCount()),
		zap.Int("unsplittable", len(plan.Unsplittable)),
	)
	return plan, nil
}

type exportJob struct {
	index  int
	group  *invoicesplit.Group
	line   invoicesplit.SplitLine
	record domain.SalesRecord
}

// Run builds the plan and hands every split line to the sales sink. Lines
// are written independently: a failed line is reported in the result and
// neither retried nor rolled back.
func (s *exportService) Run(ctx context.Context, r domain.DateRange) (*ExportResult, error) {
	plan, err := s.Plan(ctx, r)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		BatchID: uuid.New(),
		Range:   r,
		Plan:    plan,
	}
	saleDate := r.LastDay()

	jobs := make([]exportJob, 0, plan.LineCount())
	for i := range plan.Entries {
		e := &plan.Entries[i]
		for _, l := range e.Lines {
			jobs = append(jobs, exportJob{
				index: len(jobs),
				group: &e.Group,
				line:  l,
				record: domain.SalesRecord{
					ExportBatchID:    result.BatchID,
					ProductID:        e.Group.ProductID,
					PaymentMethodID:  e.Group.PaymentMethodID,
					CreditCustomerID: e.Group.CreditCustomerID,
					SequenceIndex:    l.SequenceIndex,
					Quantity:         l.Quantity,
					Rate:             l.Rate,
					Amount:           l.Amount,
					AdjustmentNote:   l.AdjustmentNote,
					SaleDate:         saleDate,
				},
			})
		}
	}

	log := logger.WithContext(ctx, s.log).With(zap.String("batch_id", result.BatchID.String()))
	result.Lines = make([]LineOutcome, len(jobs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.cfg.Concurrency)
	for i := range jobs {
		job := &jobs[i]
		sem <- struct{}{} // acquire
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }() // release
			result.Lines[job.index] = s.writeLine(ctx, log, job)
		}()
	}
	wg.Wait()

	for _, o := range result.Lines {
		if o.Status == domain.ExportLineCreated {
			result.Created++
		} else {
			result.Failed++
		}
	}

	if s.cfg.Archive && s.storage != nil {
		if err := s.archive(ctx, result); err != nil {
			log.Error("archiving split plan failed", zap.Error(err))
		}
	}

	log.Info("sales export finished",
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
		zap.Int("unsplittable", len(plan.Unsplittable)),
	)
	return result, nil
}

func (s *exportService) writeLine(ctx context.Context, log *zap.Logger, job *exportJob) LineOutcome {
	out := LineOutcome{
		ProductID:     job.group.ProductID,
		ProductName:   job.group.ProductName,
		SequenceIndex: job.line.SequenceIndex,
		Amount:        job.line.Amount,
	}
	rec := job.record
	if err := s.salesRepo.Create(ctx, &rec); err != nil {
		log.Warn("sales record not created",
			zap.String("product_id", out.ProductID.String()),
			zap.Int("sequence_index", out.SequenceIndex),
			zap.Error(err),
		)
		out.Status = domain.ExportLineFailed
		out.Error = err.Error()
		return out
	}
	out.Status = domain.ExportLineCreated
	out.SalesRecordID = rec.ID
	return out
}

func (s *exportService) archive(ctx context.Context, result *ExportResult) error {
	var buf bytes.Buffer
	if err := xlsxexport.WritePlan(result.Plan, &buf); err != nil {
		return fmt.Errorf("rendering workbook: %w", err)
	}

	key := ArchiveKey(result.Range, result.BatchID)
	size := int64(buf.Len())
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        &buf,
		ContentType: xlsxContentType,
		Size:        size,
		Metadata: map[string]string{
			"batch-id": result.BatchID.String(),
			"lines":    strconv.Itoa(result.Plan.LineCount()),
			"created":  strconv.Itoa(result.Created),
			"failed":   strconv.Itoa(result.Failed),
		},
	}); err != nil {
		return err
	}
	result.ArchiveKey = key

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, archiveLinkLifetime)
	if err != nil {
		return err
	}
	result.ArchiveURL = url
	return nil
}

// ArchiveKey is the object key of a batch's archived workbook.
func ArchiveKey(r domain.DateRange, batchID uuid.UUID) string {
	return fmt.Sprintf("exports/sales/%s_%s/%s.xlsx",
		r.From.UTC().Format(time.DateOnly), r.LastDay().Format(time.DateOnly), batchID)
}
