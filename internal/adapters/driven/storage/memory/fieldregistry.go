package memory

import (
	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
)

// Ensure FieldRegistry implements the interface.
var _ driven.FieldRegistry = (*FieldRegistry)(nil)

// FieldRegistry is an in-memory implementation of driven.FieldRegistry.
// Field configs are appended during setup and read-only afterwards.
type FieldRegistry struct {
	show    []domain.FieldConfig
	facet   []domain.FieldConfig
	heading []string
	title   []string
}

// NewFieldRegistry creates an empty field registry.
func NewFieldRegistry() *FieldRegistry {
	return &FieldRegistry{}
}

// AddShowField appends a show field config.
func (r *FieldRegistry) AddShowField(cfg domain.FieldConfig) {
	r.show = append(r.show, cfg)
}

// AddFacetField appends a facet field config.
func (r *FieldRegistry) AddFacetField(cfg domain.FieldConfig) {
	r.facet = append(r.facet, cfg)
}

// SetHeadingFields sets the ordered heading candidates.
func (r *FieldRegistry) SetHeadingFields(fields ...string) {
	r.heading = fields
}

// SetTitleFields sets the ordered title candidates.
func (r *FieldRegistry) SetTitleFields(fields ...string) {
	r.title = fields
}

// ShowFields returns the detail-page field configs in order.
func (r *FieldRegistry) ShowFields() []domain.FieldConfig {
	return r.show
}

// ShowField returns the named show field config.
func (r *FieldRegistry) ShowField(name string) (domain.FieldConfig, bool) {
	return findField(r.show, name)
}

// FacetFields returns the facet field configs in order.
func (r *FieldRegistry) FacetFields() []domain.FieldConfig {
	return r.facet
}

// FacetField returns the named facet field config.
func (r *FieldRegistry) FacetField(name string) (domain.FieldConfig, bool) {
	return findField(r.facet, name)
}

// HeadingFields returns the ordered heading candidate fields.
func (r *FieldRegistry) HeadingFields() []string {
	return r.heading
}

// TitleFields returns the ordered title candidate fields.
func (r *FieldRegistry) TitleFields() []string {
	return r.title
}

func findField(configs []domain.FieldConfig, name string) (domain.FieldConfig, bool) {
	for _, cfg := range configs {
		if cfg.Field == name {
			return cfg, true
		}
	}
	return domain.FieldConfig{}, false
}
