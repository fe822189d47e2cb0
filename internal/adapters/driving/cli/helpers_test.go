package cli

import (
	"context"
	"os"

	"github.com/custodia-labs/vetrina/internal/adapters/driven/render"
	"github.com/custodia-labs/vetrina/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/services"
)

// setupTestServices wires in-memory services with one stored document
// and returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldPresenter := presenterService
	oldDocuments := documentService
	oldConfig := fieldConfig

	store := memory.NewDocumentStore()
	_ = store.SaveDocument(context.Background(), &domain.Document{
		ID: "doc-1",
		Fields: map[string][]string{
			"title_tsim":  {"Pride and Prejudice"},
			"author_tsim": {"Austen, Jane"},
			"format":      {"Book"},
		},
		Formats: []domain.ExportFormat{
			{Name: "dc_xml", ContentType: "application/xml"},
			{Name: "oai_dc_xml", ContentType: "application/xml"},
			{Name: "json", ContentType: "application/json"},
		},
	})

	fields := memory.NewFieldRegistry()
	fields.AddShowField(domain.FieldConfig{Field: "title_tsim", Label: "Title"})
	fields.AddShowField(domain.FieldConfig{Field: "author_tsim", Label: "Author"})
	fields.AddShowField(domain.FieldConfig{Field: "subject_tsim", Label: "Subject"})
	fields.SetHeadingFields("title_tsim")
	fields.SetTitleFields("title_tsim")

	accessors := services.NewAccessorRegistry()
	presenterService = services.NewPresenterService(store, fields, render.NewContext(), accessors)
	documentService = services.NewDocumentService(store)

	return func() {
		presenterService = oldPresenter
		documentService = oldDocuments
		fieldConfig = oldConfig
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}
