package cli

import (
	"fmt"

	"github.com/custodia-labs/vetrina/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vetrina/internal/adapters/driven/render"
	"github.com/custodia-labs/vetrina/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vetrina/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
	"github.com/custodia-labs/vetrina/internal/core/services"
)

// Wire builds the default service graph from the persistent flags:
// accessor registry, render context, field configuration, document
// store, and the services on top of them.
func Wire() error {
	accessors := services.NewAccessorRegistry()
	registerBuiltinAccessors(accessors)

	registry, err := file.NewRegistry(configPath, accessors)
	if err != nil {
		return fmt.Errorf("load field configuration: %w", err)
	}

	var store driven.DocumentStore
	if memoryOnly {
		store = memory.NewDocumentStore()
	} else {
		s, err := sqlite.NewStore(dataDir)
		if err != nil {
			return fmt.Errorf("open document store: %w", err)
		}
		store = s
	}

	renderCtx := render.NewContext()

	presenterService = services.NewPresenterService(store, registry, renderCtx, accessors)
	documentService = services.NewDocumentService(store)
	fieldConfig = registry
	return nil
}

// registerBuiltinAccessors installs the accessors every configuration
// may reference without further setup.
func registerBuiltinAccessors(r *services.AccessorRegistry) {
	// field_values returns the raw values of the configured field.
	r.RegisterWithField("field_values", func(recv any, field string) (any, error) {
		doc, ok := recv.(driven.Document)
		if !ok {
			return nil, fmt.Errorf("field_values: want document, got %T", recv)
		}
		return doc.Values(field), nil
	})

	// first_value returns only the first value of the configured field.
	r.RegisterWithField("first_value", func(recv any, field string) (any, error) {
		doc, ok := recv.(driven.Document)
		if !ok {
			return nil, fmt.Errorf("first_value: want document, got %T", recv)
		}
		if v, ok := doc.FirstValue(field); ok {
			return v, nil
		}
		return nil, nil
	})

	// export_formats returns the document's export formats, usually as
	// the head of a chain ending in format_names.
	r.Register("export_formats", func(recv any) (any, error) {
		doc, ok := recv.(driven.Document)
		if !ok {
			return nil, fmt.Errorf("export_formats: want document, got %T", recv)
		}
		formats := doc.ExportFormats()
		if len(formats) == 0 {
			return nil, nil
		}
		return formats, nil
	})

	// format_names reduces a slice of export formats to their names.
	r.Register("format_names", func(recv any) (any, error) {
		formats, ok := recv.([]domain.ExportFormat)
		if !ok {
			return nil, fmt.Errorf("format_names: want export formats, got %T", recv)
		}
		names := make([]string, len(formats))
		for i, f := range formats {
			names[i] = f.Name
		}
		return names, nil
	})
}
