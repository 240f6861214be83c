package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/port"
)

type salesRecordRepo struct {
	db *sqlx.DB
}

// NewSalesRecordRepo creates a new PostgreSQL-backed SalesRecordRepository.
func NewSalesRecordRepo(db *sqlx.DB) port.SalesRecordRepository {
	return &salesRecordRepo{db: db}
}

func (r *salesRecordRepo) Create(ctx context.Context, record *domain.SalesRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now().UTC()

	query := `INSERT INTO sales_records (id, export_batch_id, product_id, payment_method_id,
		credit_customer_id, sequence_index, quantity, rate, amount, adjustment_note, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.ExportBatchID, record.ProductID, record.PaymentMethodID,
		record.CreditCustomerID, record.SequenceIndex, record.Quantity, record.Rate,
		record.Amount, record.AdjustmentNote, record.SaleDate, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("salesRecordRepo.Create: %w", err)
	}
	return nil
}
