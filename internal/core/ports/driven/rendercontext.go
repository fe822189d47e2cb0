package driven

import "github.com/custodia-labs/vetrina/internal/core/domain"

// RenderContext is the capability the core uses to reach the enclosing
// application: named helper functions, and the URL schemes the
// application defines for facet searches and document exports.
type RenderContext interface {
	// CallHelper invokes a registered helper by name with the structured
	// argument bundle. The helper's result is trusted as-is for shape
	// and safety. An unregistered name returns
	// domain.ErrUnknownHelper; helper failures propagate unchanged.
	CallHelper(name string, args domain.HelperArgs) (domain.ResolvedValue, error)

	// FacetSearchURL builds the URL of a search constrained by the
	// given facet field/value pair.
	FacetSearchURL(field, value string) string

	// ExportURL builds the URL of the document's representation in the
	// given export format.
	ExportURL(doc Document, format string) string
}
