package driving

import (
	"context"
	"html/template"

	"github.com/custodia-labs/vetrina/internal/core/domain"
)

// Presenter renders stored documents through the field configuration.
type Presenter interface {
	// RenderShowFields resolves and formats every configured show field
	// for the document, in configuration order. Absent fields render
	// with an empty value rather than being dropped.
	RenderShowFields(ctx context.Context, documentID string) ([]RenderedField, error)

	// RenderField resolves and formats a single configured show field.
	RenderField(ctx context.Context, documentID, field string) (RenderedField, error)

	// Heading returns the document heading from the configured
	// candidate fields, falling back to the document ID.
	Heading(ctx context.Context, documentID string) (string, error)

	// Title returns the document title from the configured candidate
	// fields, falling back to the document ID.
	Title(ctx context.Context, documentID string) (string, error)

	// AlternateLinks returns the document's alternate-representation
	// links after exclusion and content-type deduplication.
	AlternateLinks(ctx context.Context, documentID string, opts domain.AlternateLinkOptions) ([]domain.AlternateLink, error)
}

// RenderedField is one resolved and formatted field for display.
type RenderedField struct {
	// Field is the index field name.
	Field string

	// Label is the display label from configuration.
	Label string

	// Value is the formatted, markup-safe display value. Empty when
	// resolution found nothing.
	Value template.HTML

	// Present reports whether resolution produced any value.
	Present bool
}

// DocumentService manages stored document snapshots.
type DocumentService interface {
	// Add stores a document, minting an ID when none is supplied.
	Add(ctx context.Context, doc *domain.Document) (string, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, documentID string) error
}
