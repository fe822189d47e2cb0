package driven

import (
	"context"

	"github.com/custodia-labs/vetrina/internal/core/domain"
)

// DocumentStore persists indexed document snapshots.
// Backed by SQLite for durable storage; a memory implementation exists
// for tests and ephemeral use.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, id string) error

	// ListDocuments returns all documents ordered by ID.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
