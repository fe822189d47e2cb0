package domain

// FieldConfig is the declarative rendering policy for a single field.
// Configs are built once at configuration load and never mutated by the
// rendering core.
type FieldConfig struct {
	// Field is the index field name this config applies to.
	Field string

	// Label is the human-readable label for display surfaces.
	Label string

	// Values is a config-level explicit override. When set, resolution
	// uses it verbatim and consults no other knob.
	Values []string

	// Helper names a registered helper function that produces the
	// resolved value. The helper is trusted for shape and safety.
	Helper string

	// LinkToFacet turns each raw value into a link that narrows search
	// results by that value.
	LinkToFacet FacetLink

	// Highlight resolves the field from the backend's highlight
	// snippets instead of the raw value. No highlights means absence.
	Highlight bool

	// Accessor names registered accessor functions invoked against the
	// document instead of the raw keyed lookup.
	Accessor AccessorSpec

	// Options is an open bag of auxiliary options passed through to
	// helpers unchanged.
	Options map[string]any
}

// DisplayLabel returns the configured label, falling back to the field name.
func (c FieldConfig) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Field
}

// FacetLink configures the link-to-facet strategy. When Field is set, that
// field (not the configured one) supplies the facet constraint, while the
// configured field's value still supplies the link text.
type FacetLink struct {
	// Enabled turns the strategy on.
	Enabled bool

	// Field optionally names the field carrying the facet constraint.
	Field string
}

// TargetField returns the facet constraint field: the override when set,
// otherwise the configured field itself.
func (f FacetLink) TargetField(configured string) string {
	if f.Field != "" {
		return f.Field
	}
	return configured
}

// AccessorSpec configures the explicit-accessor strategy. An enabled spec
// with an empty chain invokes the accessor named after the field key. A
// chain of names invokes each accessor in sequence, the output of one
// feeding the next.
type AccessorSpec struct {
	// Enabled turns the strategy on.
	Enabled bool

	// Chain is the ordered list of accessor names to invoke.
	Chain []string
}

// HelperArgs is the structured argument bundle passed to helper functions.
type HelperArgs struct {
	// Field is the configured field name.
	Field string

	// Config is the full field configuration.
	Config FieldConfig

	// Options is the config's auxiliary options bag.
	Options map[string]any
}
