package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is a point-of-sale fact captured at sale time. It is
// read-only for the reporting period it belongs to.
type TransactionRecord struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	ProductID          uuid.UUID       `db:"product_id" json:"product_id"`
	ProductName        string          `db:"product_name" json:"product_name"`
	PaymentMethodID    uuid.UUID       `db:"payment_method_id" json:"payment_method_id"`
	PaymentMethodName  string          `db:"payment_method_name" json:"payment_method_name"`
	CreditCustomerID   *uuid.UUID      `db:"credit_customer_id" json:"credit_customer_id"`
	CreditCustomerName string          `db:"credit_customer_name" json:"credit_customer_name"`
	Quantity           decimal.Decimal `db:"quantity" json:"quantity"`
	Rate               decimal.Decimal `db:"rate" json:"rate"`
	Amount             decimal.Decimal `db:"amount" json:"amount"`
	IsFuel             bool            `db:"is_fuel" json:"is_fuel"`
	TransactedAt       time.Time       `db:"transacted_at" json:"transacted_at"`
}

// SalesRecord is one exported invoice line, created once per split line.
type SalesRecord struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	ExportBatchID    uuid.UUID       `db:"export_batch_id" json:"export_batch_id"`
	ProductID        uuid.UUID       `db:"product_id" json:"product_id"`
	PaymentMethodID  uuid.UUID       `db:"payment_method_id" json:"payment_method_id"`
	CreditCustomerID *uuid.UUID      `db:"credit_customer_id" json:"credit_customer_id"`
	SequenceIndex    int             `db:"sequence_index" json:"sequence_index"`
	Quantity         decimal.Decimal `db:"quantity" json:"quantity"`
	Rate             decimal.Decimal `db:"rate" json:"rate"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
	AdjustmentNote   string          `db:"adjustment_note" json:"adjustment_note"`
	SaleDate         time.Time       `db:"sale_date" json:"sale_date"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// DateRange is the half-open reporting window [From, To).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Validate checks that both ends are set and To is after From.
func (r DateRange) Validate() error {
	if r.From.IsZero() || r.To.IsZero() || !r.To.After(r.From) {
		return ErrInvalidDateRange
	}
	return nil
}

// LastDay is the calendar day of the last instant inside the window, in UTC.
func (r DateRange) LastDay() time.Time {
	last := r.To.Add(-time.Nanosecond).UTC()
	return time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
}
