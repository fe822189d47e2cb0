package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.FieldRegistry = (*Registry)(nil)

// AccessorResolver reports whether an accessor name is registered.
// Satisfied by services.AccessorRegistry; a nil resolver skips the
// load-time accessor check.
type AccessorResolver interface {
	Known(name string) bool
}

// Registry is a TOML-file-backed implementation of driven.FieldRegistry.
// Configured accessor chains are resolved against the accessor registry
// at load time so authoring mistakes surface immediately.
type Registry struct {
	mu        sync.RWMutex
	filePath  string
	accessors AccessorResolver

	show    []domain.FieldConfig
	facet   []domain.FieldConfig
	heading []string
	title   []string
}

// NewRegistry loads the field configuration from the given TOML file.
// If path is empty, defaults to ~/.vetrina/fields.toml.
func NewRegistry(path string, accessors AccessorResolver) (*Registry, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".vetrina", "fields.toml")
	}

	r := &Registry{filePath: path, accessors: accessors}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the configuration file path.
func (r *Registry) Path() string {
	return r.filePath
}

// Reload re-reads and re-normalises the configuration file.
func (r *Registry) Reload() error {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return fmt.Errorf("reading field configuration: %w", err)
	}

	var raw fileFormat
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing field configuration: %w", err)
	}

	show, err := normaliseFields(raw.ShowFields, r.accessors)
	if err != nil {
		return fmt.Errorf("show_fields: %w", err)
	}
	facet, err := normaliseFields(raw.FacetFields, r.accessors)
	if err != nil {
		return fmt.Errorf("facet_fields: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.show = show
	r.facet = facet
	r.heading = raw.HeadingFields
	r.title = raw.TitleFields
	return nil
}

// ShowFields returns the detail-page field configs in order.
func (r *Registry) ShowFields() []domain.FieldConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.show
}

// ShowField returns the named show field config.
func (r *Registry) ShowField(name string) (domain.FieldConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return findField(r.show, name)
}

// FacetFields returns the facet field configs in order.
func (r *Registry) FacetFields() []domain.FieldConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.facet
}

// FacetField returns the named facet field config.
func (r *Registry) FacetField(name string) (domain.FieldConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return findField(r.facet, name)
}

// HeadingFields returns the ordered heading candidate fields.
func (r *Registry) HeadingFields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.heading
}

// TitleFields returns the ordered title candidate fields.
func (r *Registry) TitleFields() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
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

// fileFormat is the raw TOML shape before normalisation.
type fileFormat struct {
	HeadingFields []string   `toml:"heading_fields"`
	TitleFields   []string   `toml:"title_fields"`
	ShowFields    []rawField `toml:"show_fields"`
	FacetFields   []rawField `toml:"facet_fields"`
}

// rawField accepts the permissive knob shapes: value may be a string or
// a list, link_to_facet a bool or a field name, accessor a bool, a name,
// or a chain of names.
type rawField struct {
	Field       string         `toml:"field"`
	Label       string         `toml:"label"`
	Value       any            `toml:"value"`
	Helper      string         `toml:"helper"`
	LinkToFacet any            `toml:"link_to_facet"`
	Highlight   bool           `toml:"highlight"`
	Accessor    any            `toml:"accessor"`
	Options     map[string]any `toml:"options"`
}

func normaliseFields(raws []rawField, accessors AccessorResolver) ([]domain.FieldConfig, error) {
	configs := make([]domain.FieldConfig, 0, len(raws))
	for _, raw := range raws {
		cfg, err := normaliseField(raw, accessors)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func normaliseField(raw rawField, accessors AccessorResolver) (domain.FieldConfig, error) {
	if raw.Field == "" {
		return domain.FieldConfig{}, fmt.Errorf("missing field name: %w", domain.ErrInvalidFieldConfig)
	}

	cfg := domain.FieldConfig{
		Field:     raw.Field,
		Label:     raw.Label,
		Helper:    raw.Helper,
		Highlight: raw.Highlight,
		Options:   raw.Options,
	}

	values, err := stringList(raw.Value)
	if err != nil {
		return domain.FieldConfig{}, fmt.Errorf("field %q: value: %w", raw.Field, err)
	}
	cfg.Values = values

	switch v := raw.LinkToFacet.(type) {
	case nil:
	case bool:
		cfg.LinkToFacet = domain.FacetLink{Enabled: v}
	case string:
		cfg.LinkToFacet = domain.FacetLink{Enabled: true, Field: v}
	default:
		return domain.FieldConfig{}, fmt.Errorf("field %q: link_to_facet must be a bool or field name: %w",
			raw.Field, domain.ErrInvalidFieldConfig)
	}

	switch v := raw.Accessor.(type) {
	case nil:
	case bool:
		cfg.Accessor = domain.AccessorSpec{Enabled: v}
	case string:
		cfg.Accessor = domain.AccessorSpec{Enabled: true, Chain: []string{v}}
	case []any:
		chain, err := stringList(v)
		if err != nil {
			return domain.FieldConfig{}, fmt.Errorf("field %q: accessor: %w", raw.Field, err)
		}
		cfg.Accessor = domain.AccessorSpec{Enabled: true, Chain: chain}
	default:
		return domain.FieldConfig{}, fmt.Errorf("field %q: accessor must be a bool, name, or chain: %w",
			raw.Field, domain.ErrInvalidFieldConfig)
	}

	if accessors != nil {
		for _, name := range cfg.Accessor.Chain {
			if !accessors.Known(name) {
				return domain.FieldConfig{}, fmt.Errorf("field %q: accessor %q: %w",
					raw.Field, name, domain.ErrUnknownAccessor)
			}
		}
	}

	return cfg, nil
}

// stringList normalises nil, a single string, or a list of strings.
func stringList(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{val}, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T: %w", item, domain.ErrInvalidFieldConfig)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return val, nil
	default:
		return nil, fmt.Errorf("expected string or list, got %T: %w", v, domain.ErrInvalidFieldConfig)
	}
}
