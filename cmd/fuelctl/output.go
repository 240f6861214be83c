package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fuelbooks/internal/csvexport"
	"fuelbooks/internal/invoicesplit"
	"fuelbooks/internal/service"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatYAML  = "yaml"
)

// planPrinter renders plans and export results in one output format.
type planPrinter struct {
	format string
	w      io.Writer
}

func newPlanPrinter(format string, w io.Writer) (*planPrinter, error) {
	switch format {
	case formatTable, formatCSV, formatYAML:
		return &planPrinter{format: format, w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: use table, csv or yaml", format)
	}
}

func (p *planPrinter) Plan(plan *invoicesplit.Plan) error {
	switch p.format {
	case formatCSV:
		cw := csvexport.NewWriter(p.w)
		if err := cw.WriteHeader(); err != nil {
			return err
		}
		if err := cw.WritePlan(plan); err != nil {
			return err
		}
		cw.Flush()
		return cw.Error()
	case formatYAML:
		return p.yaml(planDoc(plan))
	default:
		return p.planTable(plan)
	}
}

func (p *planPrinter) Result(result *service.ExportResult) error {
	switch p.format {
	case formatYAML:
		return p.yaml(resultDoc(result))
	case formatCSV:
		return p.Plan(result.Plan)
	default:
		if err := p.planTable(result.Plan); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "\nBatch %s: %d created, %d failed\n", result.BatchID, result.Created, result.Failed)
		for _, l := range result.Lines {
			if l.Error != "" {
				fmt.Fprintf(tw, "  %s\t#%d\t%s\t%s\n", l.ProductName, l.SequenceIndex, l.Amount.StringFixed(2), l.Error)
			}
		}
		if result.ArchiveKey != "" {
			fmt.Fprintf(tw, "Archive: %s\n", result.ArchiveKey)
		}
		return tw.Flush()
	}
}

func (p *planPrinter) planTable(plan *invoicesplit.Plan) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tPAYMENT\tCUSTOMER\tSEQ\tQTY\tRATE\tAMOUNT\tNOTE")
	for i := range plan.Entries {
		e := &plan.Entries[i]
		for _, l := range e.Lines {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
				e.Group.ProductName, e.Group.PaymentMethodName, e.Group.CreditCustomerName,
				l.SequenceIndex, l.Quantity.String(), l.Rate.StringFixed(2), l.Amount.StringFixed(2), l.AdjustmentNote)
		}
	}
	fmt.Fprintf(tw, "\n%d lines, total %s (threshold %s)\n",
		plan.LineCount(), plan.TotalAmount().StringFixed(2), plan.Threshold.StringFixed(2))
	for _, u := range plan.Unsplittable {
		fmt.Fprintf(tw, "UNSPLITTABLE\t%s\t%s\t%s\n", u.Group.ProductName, u.Group.TotalAmount.StringFixed(2), u.Reason)
	}
	return tw.Flush()
}

func (p *planPrinter) yaml(v interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type yamlLine struct {
	Sequence int             `yaml:"sequence"`
	Quantity decimal.Decimal `yaml:"quantity"`
	Rate     decimal.Decimal `yaml:"rate"`
	Amount   decimal.Decimal `yaml:"amount"`
	Note     string          `yaml:"note,omitempty"`
}

type yamlGroup struct {
	Product        string          `yaml:"product"`
	PaymentMethod  string          `yaml:"payment_method"`
	CreditCustomer string          `yaml:"credit_customer,omitempty"`
	Fuel           bool            `yaml:"fuel"`
	Transactions   int             `yaml:"transactions"`
	Quantity       decimal.Decimal `yaml:"quantity"`
	Amount         decimal.Decimal `yaml:"amount"`
	NeedsSplit     bool            `yaml:"needs_split"`
	Lines          []yamlLine      `yaml:"lines,omitempty"`
	Reason         string          `yaml:"unsplittable_reason,omitempty"`
}

type yamlPlan struct {
	Threshold    decimal.Decimal `yaml:"threshold"`
	LineCount    int             `yaml:"line_count"`
	TotalAmount  decimal.Decimal `yaml:"total_amount"`
	Groups       []yamlGroup     `yaml:"groups"`
	Unsplittable []yamlGroup     `yaml:"unsplittable,omitempty"`
}

type yamlOutcome struct {
	Product       string          `yaml:"product"`
	Sequence      int             `yaml:"sequence"`
	Amount        decimal.Decimal `yaml:"amount"`
	Status        string          `yaml:"status"`
	SalesRecordID *uuid.UUID      `yaml:"sales_record_id,omitempty"`
	Error         string          `yaml:"error,omitempty"`
}

type yamlResult struct {
	BatchID    uuid.UUID     `yaml:"batch_id"`
	Created    int           `yaml:"created"`
	Failed     int           `yaml:"failed"`
	ArchiveKey string        `yaml:"archive_key,omitempty"`
	Plan       yamlPlan      `yaml:"plan"`
	Lines      []yamlOutcome `yaml:"lines"`
}

func groupDoc(g *invoicesplit.Group) yamlGroup {
	return yamlGroup{
		Product:        g.ProductName,
		PaymentMethod:  g.PaymentMethodName,
		CreditCustomer: g.CreditCustomerName,
		Fuel:           g.IsFuel,
		Transactions:   g.TransactionCount,
		Quantity:       g.TotalQty,
		Amount:         g.TotalAmount,
	}
}

func planDoc(plan *invoicesplit.Plan) yamlPlan {
	doc := yamlPlan{
		Threshold:   plan.Threshold,
		LineCount:   plan.LineCount(),
		TotalAmount: plan.TotalAmount(),
		Groups:      make([]yamlGroup, 0, len(plan.Entries)),
	}
	for i := range plan.Entries {
		e := &plan.Entries[i]
		g := groupDoc(&e.Group)
		g.NeedsSplit = e.NeedsSplit
		for _, l := range e.Lines {
			g.Lines = append(g.Lines, yamlLine{
				Sequence: l.SequenceIndex,
				Quantity: l.Quantity,
				Rate:     l.Rate,
				Amount:   l.Amount,
				Note:     l.AdjustmentNote,
			})
		}
		doc.Groups = append(doc.Groups, g)
	}
	for i := range plan.Unsplittable {
		g := groupDoc(&plan.Unsplittable[i].Group)
		g.Reason = plan.Unsplittable[i].Reason
		doc.Unsplittable = append(doc.Unsplittable, g)
	}
	return doc
}

func resultDoc(result *service.ExportResult) yamlResult {
	doc := yamlResult{
		BatchID:    result.BatchID,
		Created:    result.Created,
		Failed:     result.Failed,
		ArchiveKey: result.ArchiveKey,
		Plan:       planDoc(result.Plan),
		Lines:      make([]yamlOutcome, 0, len(result.Lines)),
	}
	for _, l := range result.Lines {
		o := yamlOutcome{
			Product:  l.ProductName,
			Sequence: l.SequenceIndex,
			Amount:   l.Amount,
			Status:   string(l.Status),
			Error:    l.Error,
		}
		if l.SalesRecordID != uuid.Nil {
			id := l.SalesRecordID
			o.SalesRecordID = &id
		}
		doc.Lines = append(doc.Lines, o)
	}
	return doc
}
