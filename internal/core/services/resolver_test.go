package services

import (
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vetrina/internal/adapters/driven/render"
	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
)

func presenterFixture() (*FieldPresenter, *render.Context, *AccessorRegistry) {
	renderCtx := render.NewContext()
	accessors := NewAccessorRegistry()
	return NewFieldPresenter(renderCtx, accessors), renderCtx, accessors
}

func TestResolve_ExplicitValueWinsOverEverything(t *testing.T) {
	p, renderCtx, accessors := presenterFixture()
	renderCtx.RegisterHelper("never", func(domain.HelperArgs) (domain.ResolvedValue, error) {
		panic("helper must not be consulted")
	})
	accessors.Register("never", func(any) (any, error) {
		panic("accessor must not be consulted")
	})

	cfg := domain.FieldConfig{
		Field:       "title_tsim",
		Helper:      "never",
		Highlight:   true,
		LinkToFacet: domain.FacetLink{Enabled: true},
		Accessor:    domain.AccessorSpec{Enabled: true, Chain: []string{"never"}},
	}

	rv, err := p.Resolve(testDoc(), cfg, "supplied")
	require.NoError(t, err)
	assert.Equal(t, []string{"supplied"}, rv.Texts())
}

func TestResolve_ExplicitValueSequence(t *testing.T) {
	p, _, _ := presenterFixture()

	rv, err := p.Resolve(testDoc(), domain.FieldConfig{Field: "title_tsim"}, "one", "two")
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, rv.Texts())
}

func TestResolve_ConfigLevelValue(t *testing.T) {
	p, _, _ := presenterFixture()

	cfg := domain.FieldConfig{Field: "whatever", Values: []string{"pinned"}}
	rv, err := p.Resolve(testDoc(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"pinned"}, rv.Texts())

	// Call-level override still wins over the config-level value.
	rv, err = p.Resolve(testDoc(), cfg, "call-level")
	require.NoError(t, err)
	assert.Equal(t, []string{"call-level"}, rv.Texts())
}

func TestResolve_HelperMethod(t *testing.T) {
	p, renderCtx, _ := presenterFixture()

	var gotArgs domain.HelperArgs
	renderCtx.RegisterHelper("render_shelf_mark", func(args domain.HelperArgs) (domain.ResolvedValue, error) {
		gotArgs = args
		return domain.SafeValues("<span>QA 76.73</span>"), nil
	})

	cfg := domain.FieldConfig{
		Field:   "shelf_mark",
		Helper:  "render_shelf_mark",
		Options: map[string]any{"style": "compact"},
	}

	rv, err := p.Resolve(testDoc(), cfg)
	require.NoError(t, err)
	require.Len(t, rv, 1)
	assert.True(t, rv[0].IsSafe())
	assert.Equal(t, "<span>QA 76.73</span>", rv[0].Text())

	// Helper receives field name, config, and options in one bundle.
	assert.Equal(t, "shelf_mark", gotArgs.Field)
	assert.Equal(t, "render_shelf_mark", gotArgs.Config.Helper)
	assert.Equal(t, "compact", gotArgs.Options["style"])
}

func TestResolve_HelperErrorPropagates(t *testing.T) {
	p, renderCtx, _ := presenterFixture()
	boom := errors.New("template blew up")
	renderCtx.RegisterHelper("broken", func(domain.HelperArgs) (domain.ResolvedValue, error) {
		return nil, boom
	})

	_, err := p.Resolve(testDoc(), domain.FieldConfig{Field: "x", Helper: "broken"})
	assert.ErrorIs(t, err, boom)
}

func TestResolve_UnknownHelperFailsFast(t *testing.T) {
	p, _, _ := presenterFixture()

	_, err := p.Resolve(testDoc(), domain.FieldConfig{Field: "x", Helper: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUnknownHelper)
}

func TestResolve_LinkToFacet(t *testing.T) {
	p, _, _ := presenterFixture()

	doc := &domain.Document{
		ID:     "doc-1",
		Fields: map[string][]string{"format": {"Book", "Map & Atlas"}},
	}
	cfg := domain.FieldConfig{Field: "format", LinkToFacet: domain.FacetLink{Enabled: true}}

	rv, err := p.Resolve(doc, cfg)
	require.NoError(t, err)
	require.Len(t, rv, 2)
	assert.True(t, rv[0].IsSafe())
	assert.Equal(t, `<a href="/catalog?f%5Bformat%5D%5B%5D=Book">Book</a>`, rv[0].Text())
	// Value escaped in the link text, query-encoded in the href.
	assert.Equal(t, `<a href="/catalog?f%5Bformat%5D%5B%5D=Map+%26+Atlas">Map &amp; Atlas</a>`, rv[1].Text())
}

func TestResolve_LinkToFacetTargetField(t *testing.T) {
	p, _, _ := presenterFixture()

	doc := &domain.Document{
		ID: "doc-1",
		Fields: map[string][]string{
			"format":       {"Book"},
			"format_facet": {"book"},
		},
	}
	cfg := domain.FieldConfig{
		Field:       "format",
		LinkToFacet: domain.FacetLink{Enabled: true, Field: "format_facet"},
	}

	rv, err := p.Resolve(doc, cfg)
	require.NoError(t, err)
	require.Len(t, rv, 1)
	// Constraint field is the target; link text stays the configured field's value.
	assert.Equal(t, `<a href="/catalog?f%5Bformat_facet%5D%5B%5D=Book">Book</a>`, rv[0].Text())
}

func TestResolve_LinkToFacetAbsentField(t *testing.T) {
	p, _, _ := presenterFixture()

	cfg := domain.FieldConfig{Field: "missing", LinkToFacet: domain.FacetLink{Enabled: true}}
	rv, err := p.Resolve(testDoc(), cfg)
	require.NoError(t, err)
	assert.False(t, rv.Present())
}

func TestResolve_Highlight(t *testing.T) {
	p, _, _ := presenterFixture()

	doc := &domain.Document{
		ID:         "doc-1",
		Fields:     map[string][]string{"body_tsim": {"raw body"}},
		Highlights: map[string][]string{"body_tsim": {"raw <em>body</em>"}},
	}
	cfg := domain.FieldConfig{Field: "body_tsim", Highlight: true}

	rv, err := p.Resolve(doc, cfg)
	require.NoError(t, err)
	require.Len(t, rv, 1)
	assert.True(t, rv[0].IsSafe())
	assert.Equal(t, "raw <em>body</em>", rv[0].Text())
}

func TestResolve_HighlightAbsentNoRawFallback(t *testing.T) {
	p, _, _ := presenterFixture()

	// Raw value exists, but the backend reported no highlight.
	doc := &domain.Document{
		ID:     "doc-1",
		Fields: map[string][]string{"body_tsim": {"raw body"}},
	}
	cfg := domain.FieldConfig{Field: "body_tsim", Highlight: true}

	rv, err := p.Resolve(doc, cfg)
	require.NoError(t, err)
	assert.False(t, rv.Present())
}

func TestResolve_ExplicitAccessorWithFieldArg(t *testing.T) {
	p, _, accessors := presenterFixture()

	var gotField string
	accessors.RegisterWithField("solr_doc_accessor_with_arg", func(recv any, field string) (any, error) {
		gotField = field
		return recv.(driven.Document).Values(field), nil
	})

	cfg := domain.FieldConfig{
		Field:    "title_tsim",
		Accessor: domain.AccessorSpec{Enabled: true, Chain: []string{"solr_doc_accessor_with_arg"}},
	}

	rv, err := p.Resolve(testDoc(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "title_tsim", gotField)
	assert.Equal(t, []string{"Pride and Prejudice"}, rv.Texts())
}

func TestResolve_ChainedAccessor(t *testing.T) {
	p, _, accessors := presenterFixture()

	accessors.Register("export_formats", func(recv any) (any, error) {
		return recv.(driven.Document).ExportFormats(), nil
	})
	accessors.Register("format_names", func(recv any) (any, error) {
		formats := recv.([]domain.ExportFormat)
		names := make([]string, len(formats))
		for i, f := range formats {
			names[i] = f.Name
		}
		return names, nil
	})

	doc := testDoc()
	doc.Formats = []domain.ExportFormat{
		{Name: "dc_xml", ContentType: "application/xml"},
		{Name: "json", ContentType: "application/json"},
	}
	cfg := domain.FieldConfig{
		Field:    "whatever",
		Accessor: domain.AccessorSpec{Enabled: true, Chain: []string{"export_formats", "format_names"}},
	}

	rv, err := p.Resolve(doc, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"dc_xml", "json"}, rv.Texts())
}

func TestResolve_GenericAccessorFlag(t *testing.T) {
	p, _, accessors := presenterFixture()

	accessors.Register("timestamp", func(recv any) (any, error) {
		return recv.(driven.Document).Key() + "@now", nil
	})

	cfg := domain.FieldConfig{Field: "timestamp", Accessor: domain.AccessorSpec{Enabled: true}}
	rv, err := p.Resolve(testDoc(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-1@now"}, rv.Texts())
}

func TestResolve_UnknownAccessorFailsFast(t *testing.T) {
	p, _, _ := presenterFixture()

	cfg := domain.FieldConfig{
		Field:    "title_tsim",
		Accessor: domain.AccessorSpec{Enabled: true, Chain: []string{"ghost"}},
	}
	_, err := p.Resolve(testDoc(), cfg)
	assert.ErrorIs(t, err, domain.ErrUnknownAccessor)
}

func TestResolve_RawLookupDefault(t *testing.T) {
	p, _, _ := presenterFixture()

	rv, err := p.Resolve(testDoc(), domain.FieldConfig{Field: "title_tsim"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pride and Prejudice"}, rv.Texts())
}

func TestResolve_AbsentIsNotAnError(t *testing.T) {
	p, _, _ := presenterFixture()

	rv, err := p.Resolve(testDoc(), domain.FieldConfig{Field: "no_such_field"})
	require.NoError(t, err)
	assert.False(t, rv.Present())
}

func TestRender_EscapesRawValues(t *testing.T) {
	p, _, _ := presenterFixture()

	doc := &domain.Document{
		ID:     "doc-1",
		Fields: map[string][]string{"note_tsim": {"<b>val1</b>"}},
	}

	out, err := p.Render(doc, domain.FieldConfig{Field: "note_tsim"})
	require.NoError(t, err)
	assert.Equal(t, template.HTML("&lt;b&gt;val1&lt;/b&gt;"), out)
}

func TestRender_JoinsMultiValued(t *testing.T) {
	p, _, _ := presenterFixture()

	doc := &domain.Document{
		ID:     "doc-1",
		Fields: map[string][]string{"author_tsim": {"<a", "b"}},
	}

	out, err := p.Render(doc, domain.FieldConfig{Field: "author_tsim"})
	require.NoError(t, err)
	assert.Equal(t, template.HTML("&lt;a and b"), out)
}

func TestRender_AbsentRendersBlank(t *testing.T) {
	p, _, _ := presenterFixture()

	out, err := p.Render(testDoc(), domain.FieldConfig{Field: "missing"})
	require.NoError(t, err)
	assert.Equal(t, template.HTML(""), out)
}

func TestCoerceValue_Shapes(t *testing.T) {
	assert.Nil(t, coerceValue(nil))
	assert.Equal(t, []string{"x"}, coerceValue("x").Texts())
	assert.Equal(t, []string{"a", "b"}, coerceValue([]string{"a", "b"}).Texts())
	assert.Equal(t, []string{"42"}, coerceValue(42).Texts())

	rv := coerceValue(template.HTML("<em>x</em>"))
	require.Len(t, rv, 1)
	assert.True(t, rv[0].IsSafe())

	rv = coerceValue([]any{"a", template.HTML("<em>b</em>")})
	require.Len(t, rv, 2)
	assert.False(t, rv[0].IsSafe())
	assert.True(t, rv[1].IsSafe())

	rv = coerceValue(domain.ResolvedValue{domain.Safe("s")})
	require.Len(t, rv, 1)
	assert.True(t, rv[0].IsSafe())
}
