// Package invoicesplit groups point-of-sale transactions into invoice groups
// and cuts oversized groups into threshold-sized invoice lines.
package invoicesplit

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fuelbooks/internal/domain"
)

// GroupKey identifies a group. A sale without a credit customer is its own
// key value, distinct from every concrete customer.
type GroupKey struct {
	ProductID         uuid.UUID
	PaymentMethodID   uuid.UUID
	CreditCustomerID  uuid.UUID
	HasCreditCustomer bool
}

// KeyOf returns the grouping key of a transaction.
func KeyOf(r *domain.TransactionRecord) GroupKey {
	k := GroupKey{ProductID: r.ProductID, PaymentMethodID: r.PaymentMethodID}
	if r.CreditCustomerID != nil {
		k.CreditCustomerID = *r.CreditCustomerID
		k.HasCreditCustomer = true
	}
	return k
}

// Group aggregates the transactions sharing a key. Descriptive fields come
// from the first transaction seen for the key.
type Group struct {
	Key                GroupKey        `json:"-"`
	ProductID          uuid.UUID       `json:"product_id"`
	ProductName        string          `json:"product_name"`
	PaymentMethodID    uuid.UUID       `json:"payment_method_id"`
	PaymentMethodName  string          `json:"payment_method_name"`
	CreditCustomerID   *uuid.UUID      `json:"credit_customer_id,omitempty"`
	CreditCustomerName string          `json:"credit_customer_name,omitempty"`
	IsFuel             bool            `json:"is_fuel"`
	TransactionCount   int             `json:"transaction_count"`
	TotalQty           decimal.Decimal `json:"total_qty"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
}

// AvgRate is TotalAmount/TotalQty, or zero when no quantity was sold.
// Only fuel groups rely on it to rebuild the amount.
func (g Group) AvgRate() decimal.Decimal {
	if g.TotalQty.IsZero() {
		return decimal.Zero
	}
	return g.TotalAmount.Div(g.TotalQty)
}

// GroupTransactions partitions records by key. Groups come back in the
// order their key was first seen; sums run in input order.
func GroupTransactions(records []domain.TransactionRecord) []Group {
	index := make(map[GroupKey]int)
	groups := make([]Group, 0)

	for i := range records {
		r := &records[i]
		key := KeyOf(r)
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, newGroup(key, r))
		}
		g := &groups[pos]
		g.TransactionCount++
		g.TotalQty = g.TotalQty.Add(r.Quantity)
		g.TotalAmount = g.TotalAmount.Add(r.Amount)
	}
	return groups
}

func newGroup(key GroupKey, first *domain.TransactionRecord) Group {
	g := Group{
		Key:                key,
		ProductID:          first.ProductID,
		ProductName:        first.ProductName,
		PaymentMethodID:    first.PaymentMethodID,
		PaymentMethodName:  first.PaymentMethodName,
		CreditCustomerName: first.CreditCustomerName,
		IsFuel:             first.IsFuel,
		TotalQty:           decimal.Zero,
		TotalAmount:        decimal.Zero,
	}
	if key.HasCreditCustomer {
		id := key.CreditCustomerID
		g.CreditCustomerID = &id
	}
	return g
}
