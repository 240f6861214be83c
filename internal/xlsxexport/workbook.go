// Package xlsxexport renders split plans as Excel workbooks.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fuelbooks/internal/invoicesplit"
)

// Sheet names of the generated workbook.
const (
	PlanSheet         = "Split Plan"
	UnsplittableSheet = "Unsplittable"
)

var planHeader = []interface{}{
	"Product", "Payment Method", "Credit Customer", "Fuel", "Group Amount",
	"Sequence", "Quantity", "Rate", "Amount", "Adjustment Note",
}

var unsplittableHeader = []interface{}{
	"Product", "Payment Method", "Credit Customer", "Quantity", "Amount", "Reason",
}

// WritePlan writes the plan as a two-sheet workbook to w. Amounts are
// written as numbers so the sheet can be summed; the plan's exact decimal
// values stay authoritative.
func WritePlan(plan *invoicesplit.Plan, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), PlanSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(UnsplittableSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeRow(f, PlanSheet, 1, planHeader); err != nil {
		return err
	}
	row := 2
	for i := range plan.Entries {
		e := &plan.Entries[i]
		for _, l := range e.Lines {
			if err := writeRow(f, PlanSheet, row, []interface{}{
				e.Group.ProductName,
				e.Group.PaymentMethodName,
				e.Group.CreditCustomerName,
				e.Group.IsFuel,
				e.Group.TotalAmount.InexactFloat64(),
				l.SequenceIndex,
				l.Quantity.InexactFloat64(),
				l.Rate.InexactFloat64(),
				l.Amount.InexactFloat64(),
				l.AdjustmentNote,
			}); err != nil {
				return err
			}
			row++
		}
	}
	if err := f.SetCellStyle(PlanSheet, "A1", "J1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	if err := writeRow(f, UnsplittableSheet, 1, unsplittableHeader); err != nil {
		return err
	}
	for i := range plan.Unsplittable {
		u := &plan.Unsplittable[i]
		if err := writeRow(f, UnsplittableSheet, i+2, []interface{}{
			u.Group.ProductName,
			u.Group.PaymentMethodName,
			u.Group.CreditCustomerName,
			u.Group.TotalQty.InexactFloat64(),
			u.Group.TotalAmount.InexactFloat64(),
			u.Reason,
		}); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(UnsplittableSheet, "A1", "F1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
