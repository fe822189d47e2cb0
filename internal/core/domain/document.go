package domain

import "time"

// Document is a read-only snapshot of an indexed document as returned by
// the search backend. Fields are multi-valued; highlights are markup-safe
// snippets produced by the backend for matched query terms.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Fields maps a field name to its ordered values.
	Fields map[string][]string

	// Highlights maps a field name to markup-safe snippet fragments.
	// Fragments are trusted as-is; the backend has already escaped the
	// surrounding text and inserted emphasis markup.
	Highlights map[string][]string

	// Formats lists the document's export formats in insertion order.
	Formats []ExportFormat

	// CreatedAt is when the document was first indexed.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}

// ExportFormat describes an alternate machine-readable representation of
// a document.
type ExportFormat struct {
	// Name is the short format identifier (e.g. "dc_xml").
	Name string

	// ContentType is the MIME type of the representation.
	ContentType string
}

// Key returns the document's identity field value.
func (d *Document) Key() string {
	return d.ID
}

// Has reports whether the field exists with at least one value.
func (d *Document) Has(field string) bool {
	return len(d.Fields[field]) > 0
}

// Values returns the field's ordered values, or nil when absent.
func (d *Document) Values(field string) []string {
	return d.Fields[field]
}

// FirstValue returns the field's first value and whether one exists.
func (d *Document) FirstValue(field string) (string, bool) {
	vals := d.Fields[field]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// ValueOr returns the field's first value, or fallback when absent.
func (d *Document) ValueOr(field, fallback string) string {
	if v, ok := d.FirstValue(field); ok {
		return v
	}
	return fallback
}

// HighlightFields returns the field's highlight fragments as safe values
// and whether any exist. Absence of highlights is distinct from absence
// of the raw field.
func (d *Document) HighlightFields(field string) (ResolvedValue, bool) {
	frags := d.Highlights[field]
	if len(frags) == 0 {
		return nil, false
	}
	out := make(ResolvedValue, len(frags))
	for i, f := range frags {
		out[i] = Safe(f)
	}
	return out, true
}

// ExportFormats returns the document's export formats in insertion order.
func (d *Document) ExportFormats() []ExportFormat {
	return d.Formats
}
