package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"fuelbooks/internal/domain"
	"fuelbooks/internal/port"
)

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.TransactionRecord, error) {
	records := make([]domain.TransactionRecord, 0)
	err := r.db.SelectContext(ctx, &records,
		`SELECT id, product_id, product_name, payment_method_id, payment_method_name,
		        credit_customer_id, credit_customer_name, quantity, rate, amount,
		        is_fuel, transacted_at
		 FROM pos_transactions
		 WHERE transacted_at >= $1 AND transacted_at < $2
		 ORDER BY transacted_at, id`,
		from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.ListByDateRange: %w", err)
	}
	return records, nil
}
