// Package render provides the default RenderContext implementation: a
// helper-function registry plus the application's facet-search and
// export URL schemes.
package render

import (
	"fmt"
	"net/url"

	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
)

// Ensure Context implements the interface.
var _ driven.RenderContext = (*Context)(nil)

// HelperFunc is a registered rendering helper. Helpers are trusted to
// produce correct shape and safety; their errors propagate unchanged.
type HelperFunc func(args domain.HelperArgs) (domain.ResolvedValue, error)

// Context implements driven.RenderContext. Helper registrations happen
// once during setup; the context is read-only afterwards and safe to
// share across request-scoped presenters.
type Context struct {
	helpers    map[string]HelperFunc
	searchBase string
	exportBase string
}

// NewContext creates a render context with the default URL bases.
func NewContext() *Context {
	return &Context{
		helpers:    make(map[string]HelperFunc),
		searchBase: "/catalog",
		exportBase: "/catalog",
	}
}

// SetSearchBase overrides the facet-search base path.
func (c *Context) SetSearchBase(base string) {
	c.searchBase = base
}

// SetExportBase overrides the export base path.
func (c *Context) SetExportBase(base string) {
	c.exportBase = base
}

// RegisterHelper adds a named helper function.
func (c *Context) RegisterHelper(name string, fn HelperFunc) {
	c.helpers[name] = fn
}

// CallHelper invokes a registered helper by name.
func (c *Context) CallHelper(name string, args domain.HelperArgs) (domain.ResolvedValue, error) {
	fn, ok := c.helpers[name]
	if !ok {
		return nil, fmt.Errorf("helper %q: %w", name, domain.ErrUnknownHelper)
	}
	return fn(args)
}

// FacetSearchURL builds a search URL constrained by the facet
// field/value pair, e.g. /catalog?f%5Bformat%5D%5B%5D=Book.
func (c *Context) FacetSearchURL(field, value string) string {
	params := url.Values{}
	params.Add(fmt.Sprintf("f[%s][]", field), value)
	return c.searchBase + "?" + params.Encode()
}

// ExportURL builds the export URL for the document/format pair,
// e.g. /catalog/doc-1.dc_xml.
func (c *Context) ExportURL(doc driven.Document, format string) string {
	return fmt.Sprintf("%s/%s.%s", c.exportBase, url.PathEscape(doc.Key()), format)
}
