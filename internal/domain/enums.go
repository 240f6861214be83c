package domain

// TaxSource identifies who produced a line's current tax breakdown.
type TaxSource string

const (
	TaxSourceLocal         TaxSource = "local"
	TaxSourceAuthoritative TaxSource = "authoritative"
)

// ExportLineStatus is the outcome of handing one split line to the sales sink.
type ExportLineStatus string

const (
	ExportLineCreated ExportLineStatus = "created"
	ExportLineFailed  ExportLineStatus = "failed"
)
