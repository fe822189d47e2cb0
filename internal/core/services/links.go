package services

import (
	"github.com/custodia-labs/vetrina/internal/core/domain"
	"github.com/custodia-labs/vetrina/internal/core/ports/driven"
)

// AlternateLinks enumerates the document's export formats and builds one
// link descriptor per remaining format after filtering. Output order
// matches the document's format enumeration order. With opts.Unique set,
// only the first-encountered format per distinct content type is kept;
// later duplicates are dropped silently. The generator holds no state
// and is idempotent for a stable document.
func AlternateLinks(renderCtx driven.RenderContext, doc driven.Document, opts domain.AlternateLinkOptions) []domain.AlternateLink {
	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, name := range opts.Exclude {
		excluded[name] = struct{}{}
	}

	var links []domain.AlternateLink
	seen := make(map[string]struct{})
	for _, format := range doc.ExportFormats() {
		if _, skip := excluded[format.Name]; skip {
			continue
		}
		if opts.Unique {
			if _, dup := seen[format.ContentType]; dup {
				continue
			}
			seen[format.ContentType] = struct{}{}
		}
		links = append(links, domain.AlternateLink{
			Rel:         domain.RelAlternate,
			Title:       format.Name,
			ContentType: format.ContentType,
			Href:        renderCtx.ExportURL(doc, format.Name),
		})
	}
	return links
}
