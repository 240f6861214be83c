package port

import (
	"context"
	"time"

	"fuelbooks/internal/domain"
)

// TransactionRepository is the read-only source of point-of-sale facts.
type TransactionRepository interface {
	// ListByDateRange returns the transactions with from <= transacted_at < to,
	// ordered by transacted_at then id.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.TransactionRecord, error)
}

// SalesRecordRepository is the sink for exported invoice lines.
type SalesRecordRepository interface {
	Create(ctx context.Context, record *domain.SalesRecord) error
}
