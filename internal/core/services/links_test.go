package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vetrina/internal/adapters/driven/render"
	"github.com/custodia-labs/vetrina/internal/core/domain"
)

func exportDoc() *domain.Document {
	return &domain.Document{
		ID: "doc-1",
		Formats: []domain.ExportFormat{
			{Name: "weird", ContentType: "application/weird"},
			{Name: "weirder", ContentType: "application/weirder"},
			{Name: "weird_dup", ContentType: "application/weird"},
		},
	}
}

func TestAlternateLinks_All(t *testing.T) {
	renderCtx := render.NewContext()

	links := AlternateLinks(renderCtx, exportDoc(), domain.AlternateLinkOptions{})
	require.Len(t, links, 3)
	assert.Equal(t, "weird", links[0].Title)
	assert.Equal(t, "weirder", links[1].Title)
	assert.Equal(t, "weird_dup", links[2].Title)
}

func TestAlternateLinks_UniqueByContentType(t *testing.T) {
	renderCtx := render.NewContext()

	links := AlternateLinks(renderCtx, exportDoc(), domain.AlternateLinkOptions{Unique: true})
	require.Len(t, links, 2)
	// First-seen format per content type is retained.
	assert.Equal(t, "weird", links[0].Title)
	assert.Equal(t, "weirder", links[1].Title)
}

func TestAlternateLinks_Exclude(t *testing.T) {
	renderCtx := render.NewContext()

	links := AlternateLinks(renderCtx, exportDoc(), domain.AlternateLinkOptions{
		Exclude: []string{"weird_dup"},
	})
	require.Len(t, links, 2)
	assert.Equal(t, "weird", links[0].Title)
	assert.Equal(t, "weirder", links[1].Title)
}

func TestAlternateLinks_ExcludeWithUnique(t *testing.T) {
	renderCtx := render.NewContext()

	// Excluding the first-seen format lets the duplicate through.
	links := AlternateLinks(renderCtx, exportDoc(), domain.AlternateLinkOptions{
		Unique:  true,
		Exclude: []string{"weird"},
	})
	require.Len(t, links, 2)
	assert.Equal(t, "weirder", links[0].Title)
	assert.Equal(t, "weird_dup", links[1].Title)
}

func TestAlternateLinks_DescriptorFields(t *testing.T) {
	renderCtx := render.NewContext()

	links := AlternateLinks(renderCtx, exportDoc(), domain.AlternateLinkOptions{})
	require.NotEmpty(t, links)

	link := links[0]
	assert.Equal(t, domain.RelAlternate, link.Rel)
	assert.Equal(t, "weird", link.Title)
	assert.Equal(t, "application/weird", link.ContentType)
	assert.Equal(t, renderCtx.ExportURL(exportDoc(), "weird"), link.Href)
}

func TestAlternateLinks_NoFormats(t *testing.T) {
	renderCtx := render.NewContext()
	doc := &domain.Document{ID: "doc-1"}

	assert.Empty(t, AlternateLinks(renderCtx, doc, domain.AlternateLinkOptions{Unique: true}))
}
