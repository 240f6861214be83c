package invoicesplit

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PlanEntry is a group together with the lines it will be exported as.
type PlanEntry struct {
	Group      Group       `json:"group"`
	NeedsSplit bool        `json:"needs_split"`
	Lines      []SplitLine `json:"lines"`
}

// UnsplittableGroup is a group left for manual handling.
type UnsplittableGroup struct {
	Group  Group  `json:"group"`
	Reason string `json:"reason"`
}

// Plan is the split result for a whole reporting period.
type Plan struct {
	Threshold    decimal.Decimal     `json:"threshold"`
	Entries      []PlanEntry         `json:"entries"`
	Unsplittable []UnsplittableGroup `json:"unsplittable"`
}

// BuildPlan splits every group. Unsplittable groups are collected rather
// than failing the plan; the only error is an invalid threshold.
func BuildPlan(groups []Group, threshold decimal.Decimal) (*Plan, error) {
	p := &Plan{
		Threshold:    threshold,
		Entries:      make([]PlanEntry, 0, len(groups)),
		Unsplittable: make([]UnsplittableGroup, 0),
	}
	for i := range groups {
		g := groups[i]
		lines, err := Split(g, threshold)
		if err != nil {
			var ue *UnsplittableError
			if errors.As(err, &ue) {
				p.Unsplittable = append(p.Unsplittable, UnsplittableGroup{Group: g, Reason: ue.Reason})
				continue
			}
			return nil, err
		}
		p.Entries = append(p.Entries, PlanEntry{
			Group:      g,
			NeedsSplit: NeedsSplit(g, threshold),
			Lines:      lines,
		})
	}
	return p, nil
}

// LineCount is the number of invoice lines the plan exports.
func (p *Plan) LineCount() int {
	n := 0
	for i := range p.Entries {
		n += len(p.Entries[i].Lines)
	}
	return n
}

// TotalAmount sums the exportable lines.
func (p *Plan) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for i := range p.Entries {
		for _, l := range p.Entries[i].Lines {
			total = total.Add(l.Amount)
		}
	}
	return total
}
