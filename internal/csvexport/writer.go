package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"fuelbooks/internal/invoicesplit"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (12 columns).
var columns = []string{
	"Product",
	"Payment Method",
	"Credit Customer",
	"Fuel",
	"Transactions",
	"Group Quantity",
	"Group Amount",
	"Sequence",
	"Quantity",
	"Rate",
	"Amount",
	"Adjustment Note",
}

// Writer wraps csv.Writer for exporting split plans as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WritePlan writes one row per split line. Unsplittable groups get a
// single row with the line columns empty and the reason as the note.
func (w *Writer) WritePlan(plan *invoicesplit.Plan) error {
	for i := range plan.Entries {
		e := &plan.Entries[i]
		for j := range e.Lines {
			if err := w.csv.Write(lineToRow(&e.Group, &e.Lines[j])); err != nil {
				return err
			}
		}
	}
	for i := range plan.Unsplittable {
		u := &plan.Unsplittable[i]
		row := groupColumns(&u.Group)
		row[11] = "unsplittable: " + u.Reason
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func groupColumns(g *invoicesplit.Group) []string {
	row := make([]string, len(columns))
	row[0] = g.ProductName
	row[1] = g.PaymentMethodName
	row[2] = g.CreditCustomerName
	row[3] = formatBool(g.IsFuel)
	row[4] = strconv.Itoa(g.TransactionCount)
	row[5] = g.TotalQty.StringFixed(3)
	row[6] = g.TotalAmount.StringFixed(2)
	return row
}

func lineToRow(g *invoicesplit.Group, l *invoicesplit.SplitLine) []string {
	row := groupColumns(g)
	row[7] = strconv.Itoa(l.SequenceIndex)
	row[8] = l.Quantity.StringFixed(3)
	row[9] = l.Rate.StringFixed(2)
	row[10] = l.Amount.StringFixed(2)
	row[11] = l.AdjustmentNote
	return row
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
