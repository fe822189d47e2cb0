package services

import (
	"fmt"
	"html/template"

	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
	"github.com/custodia-labs/vetrina/internal/logger"
)

// FieldPresenter resolves a field's display value through the strategy
// chain and formats it. Instances are stateless and cheap; construct one
// per request context.
type FieldPresenter struct {
	renderCtx driven.RenderContext
	accessors *AccessorRegistry
	joiner    ListJoiner
}

// NewFieldPresenter creates a field presenter. accessors may be nil when
// no accessor strategies are configured.
func NewFieldPresenter(renderCtx driven.RenderContext, accessors *AccessorRegistry) *FieldPresenter {
	if accessors == nil {
		accessors = NewAccessorRegistry()
	}
	return &FieldPresenter{
		renderCtx: renderCtx,
		accessors: accessors,
		joiner:    DefaultListJoiner(),
	}
}

// SetJoiner overrides the list grammar used by Render.
func (p *FieldPresenter) SetJoiner(j ListJoiner) {
	p.joiner = j
}

// resolveRequest carries one resolution's inputs through the chain.
type resolveRequest struct {
	doc         driven.Document
	cfg         domain.FieldConfig
	explicit    []string
	hasExplicit bool
}

// strategy is one typed check in the resolution chain. The first
// strategy that applies decides the outcome: absence from an applicable
// strategy is final and never falls through to a later one.
type strategy struct {
	name    string
	applies func(req *resolveRequest) bool
	run     func(p *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error)
}

// strategies is the fixed priority order of the resolution chain.
var strategies = []strategy{
	{
		name:    "explicit_value",
		applies: func(req *resolveRequest) bool { return req.hasExplicit || len(req.cfg.Values) > 0 },
		run: func(_ *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			if req.hasExplicit {
				return domain.UnsafeValues(req.explicit...), nil
			}
			return domain.UnsafeValues(req.cfg.Values...), nil
		},
	},
	{
		name:    "helper_method",
		applies: func(req *resolveRequest) bool { return req.cfg.Helper != "" },
		run: func(p *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			return p.renderCtx.CallHelper(req.cfg.Helper, domain.HelperArgs{
				Field:   req.cfg.Field,
				Config:  req.cfg,
				Options: req.cfg.Options,
			})
		},
	},
	{
		name:    "link_to_facet",
		applies: func(req *resolveRequest) bool { return req.cfg.LinkToFacet.Enabled },
		run: func(p *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			return p.facetLinks(req), nil
		},
	},
	{
		name:    "highlight",
		applies: func(req *resolveRequest) bool { return req.cfg.Highlight },
		run: func(_ *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			// No highlight means absence, never the raw value.
			rv, ok := req.doc.HighlightFields(req.cfg.Field)
			if !ok {
				return nil, nil
			}
			return rv, nil
		},
	},
	{
		name: "explicit_accessor",
		applies: func(req *resolveRequest) bool {
			return req.cfg.Accessor.Enabled && len(req.cfg.Accessor.Chain) > 0
		},
		run: func(p *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			out, err := p.accessors.InvokeChain(req.doc, req.cfg.Field, req.cfg.Accessor.Chain)
			if err != nil {
				return nil, err
			}
			return coerceValue(out), nil
		},
	},
	{
		name:    "generic_accessor",
		applies: func(req *resolveRequest) bool { return req.cfg.Accessor.Enabled },
		run: func(p *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			out, err := p.accessors.InvokeChain(req.doc, req.cfg.Field, []string{req.cfg.Field})
			if err != nil {
				return nil, err
			}
			return coerceValue(out), nil
		},
	},
	{
		name:    "raw_lookup",
		applies: func(*resolveRequest) bool { return true },
		run: func(_ *FieldPresenter, req *resolveRequest) (domain.ResolvedValue, error) {
			return domain.UnsafeValues(req.doc.Values(req.cfg.Field)...), nil
		},
	},
}

// Resolve determines the field's display value. explicit, when supplied,
// overrides every configured strategy. Absence is a nil ResolvedValue,
// never an error; errors indicate configuration defects or helper
// failures.
func (p *FieldPresenter) Resolve(doc driven.Document, cfg domain.FieldConfig, explicit ...string) (domain.ResolvedValue, error) {
	req := &resolveRequest{
		doc:         doc,
		cfg:         cfg,
		explicit:    explicit,
		hasExplicit: len(explicit) > 0,
	}

	for i := range strategies {
		if !strategies[i].applies(req) {
			continue
		}
		rv, err := strategies[i].run(p, req)
		if err != nil {
			return nil, fmt.Errorf("field %q (%s): %w", cfg.Field, strategies[i].name, err)
		}
		logger.Debug("field %q resolved via %s (present=%v)", cfg.Field, strategies[i].name, rv.Present())
		return rv, nil
	}

	return nil, nil
}

// Render resolves the field and formats the result as a single
// markup-safe string.
func (p *FieldPresenter) Render(doc driven.Document, cfg domain.FieldConfig, explicit ...string) (template.HTML, error) {
	rv, err := p.Resolve(doc, cfg, explicit...)
	if err != nil {
		return "", err
	}
	return p.joiner.Join(rv), nil
}

// facetLinks turns each raw value into a search link. The facet
// constraint comes from the link target field; the link text is always
// the configured field's value.
func (p *FieldPresenter) facetLinks(req *resolveRequest) domain.ResolvedValue {
	values := req.doc.Values(req.cfg.Field)
	if len(values) == 0 {
		return nil
	}

	target := req.cfg.LinkToFacet.TargetField(req.cfg.Field)
	out := make(domain.ResolvedValue, len(values))
	for i, v := range values {
		href := p.renderCtx.FacetSearchURL(target, v)
		out[i] = domain.Safe(fmt.Sprintf(`<a href="%s">%s</a>`,
			template.HTMLEscapeString(href), template.HTMLEscapeString(v)))
	}
	return out
}

// coerceValue normalises an accessor's return value into a
// ResolvedValue. Raw strings are unsafe; template.HTML and tagged
// values keep their safety.
func coerceValue(out any) domain.ResolvedValue {
	switch v := out.(type) {
	case nil:
		return nil
	case domain.ResolvedValue:
		return v
	case domain.Value:
		return domain.ResolvedValue{v}
	case string:
		return domain.UnsafeValues(v)
	case []string:
		return domain.UnsafeValues(v...)
	case template.HTML:
		return domain.SafeValues(string(v))
	case []any:
		var rv domain.ResolvedValue
		for _, item := range v {
			rv = append(rv, coerceValue(item)...)
		}
		return rv
	case fmt.Stringer:
		return domain.UnsafeValues(v.String())
	default:
		return domain.UnsafeValues(fmt.Sprintf("%v", v))
	}
}
