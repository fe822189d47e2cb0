package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
	"github.com/custodia-labs/vetrina/internal/core/ports/driving"
)

// Ensure PresenterService implements the interface.
var _ driving.Presenter = (*PresenterService)(nil)

// PresenterService renders stored documents through the field
// configuration. It looks documents up by ID and delegates to the
// field presenter, heading resolver, and alternate-link generator.
type PresenterService struct {
	docStore  driven.DocumentStore
	fields    driven.FieldRegistry
	renderCtx driven.RenderContext
	presenter *FieldPresenter
}

// NewPresenterService creates a presenter service.
func NewPresenterService(
	docStore driven.DocumentStore,
	fields driven.FieldRegistry,
	renderCtx driven.RenderContext,
	accessors *AccessorRegistry,
) *PresenterService {
	return &PresenterService{
		docStore:  docStore,
		fields:    fields,
		renderCtx: renderCtx,
		presenter: NewFieldPresenter(renderCtx, accessors),
	}
}

// RenderShowFields resolves and formats every configured show field for
// the document, in configuration order.
func (s *PresenterService) RenderShowFields(ctx context.Context, documentID string) ([]driving.RenderedField, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	configs := s.fields.ShowFields()
	rendered := make([]driving.RenderedField, 0, len(configs))
	for _, cfg := range configs {
		field, err := s.renderOne(doc, cfg)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, field)
	}
	return rendered, nil
}

// RenderField resolves and formats a single configured show field.
func (s *PresenterService) RenderField(ctx context.Context, documentID, field string) (driving.RenderedField, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return driving.RenderedField{}, err
	}

	cfg, ok := s.fields.ShowField(field)
	if !ok {
		return driving.RenderedField{}, fmt.Errorf("show field %q: %w", field, domain.ErrNotFound)
	}
	return s.renderOne(doc, cfg)
}

func (s *PresenterService) renderOne(doc driven.Document, cfg domain.FieldConfig) (driving.RenderedField, error) {
	rv, err := s.presenter.Resolve(doc, cfg)
	if err != nil {
		return driving.RenderedField{}, err
	}
	return driving.RenderedField{
		Field:   cfg.Field,
		Label:   cfg.DisplayLabel(),
		Value:   s.presenter.joiner.Join(rv),
		Present: rv.Present(),
	}, nil
}

// Heading returns the document heading from the configured candidates.
func (s *PresenterService) Heading(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	return Heading(doc, s.fields.HeadingFields()), nil
}

// Title returns the document title from the configured candidates.
func (s *PresenterService) Title(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	return Title(doc, s.fields.TitleFields()), nil
}

// AlternateLinks returns the document's alternate-representation links.
func (s *PresenterService) AlternateLinks(ctx context.Context, documentID string, opts domain.AlternateLinkOptions) ([]domain.AlternateLink, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return AlternateLinks(s.renderCtx, doc, opts), nil
}
