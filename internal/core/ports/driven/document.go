package driven

import "github.com/custodia-labs/vetrina/internal/core/domain"

// Document is the read-only capability the rendering core needs from one
// indexed document. The storage layer owns the concrete representation;
// the core never mutates a document.
type Document interface {
	// Key returns the document's identity field value.
	Key() string

	// Has reports whether the field exists with at least one value.
	Has(field string) bool

	// Values returns the field's ordered values, or nil when absent.
	Values(field string) []string

	// FirstValue returns the field's first value and whether one exists.
	FirstValue(field string) (string, bool)

	// ValueOr returns the field's first value, or fallback when absent.
	ValueOr(field, fallback string) string

	// HighlightFields returns the field's highlight fragments as safe
	// values and whether any exist.
	HighlightFields(field string) (domain.ResolvedValue, bool)

	// ExportFormats returns the export formats in insertion order.
	ExportFormats() []domain.ExportFormat
}

// Compile-time check that the domain snapshot satisfies the capability.
var _ Document = (*domain.Document)(nil)
