package driven

import "github.com/custodia-labs/vetrina/internal/core/domain"

// FieldRegistry exposes the declarative field configuration. Show fields
// and facet fields are distinct namespaces; both preserve the order in
// which fields were configured.
type FieldRegistry interface {
	// ShowFields returns the detail-page field configs in order.
	ShowFields() []domain.FieldConfig

	// ShowField returns the named show field config.
	ShowField(name string) (domain.FieldConfig, bool)

	// FacetFields returns the facet field configs in order.
	FacetFields() []domain.FieldConfig

	// FacetField returns the named facet field config.
	FacetField(name string) (domain.FieldConfig, bool)

	// HeadingFields returns the ordered heading candidate fields.
	HeadingFields() []string

	// TitleFields returns the ordered title candidate fields.
	TitleFields() []string
}
