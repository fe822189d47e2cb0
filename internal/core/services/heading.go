package services

import "github.com/custodia-labs/vetrina/internal/core/ports/driven"

// Heading walks the candidate fields in order and returns the first
// present field's values joined with list grammar. An empty candidate
// list, or no present candidate, falls back to the document's identity
// field.
func Heading(doc driven.Document, candidates []string) string {
	joiner := DefaultListJoiner()
	for _, field := range candidates {
		if doc.Has(field) {
			return joiner.JoinStrings(doc.Values(field))
		}
	}
	return doc.Key()
}

// Title resolves the document title from the candidate fields. Unlike
// Heading it fetches with a per-candidate fallback, so a candidate that
// reports presence but yields no value falls through to the next rather
// than producing a blank title.
func Title(doc driven.Document, candidates []string) string {
	joiner := DefaultListJoiner()
	for _, field := range candidates {
		if v := doc.ValueOr(field, ""); v != "" {
			return joiner.JoinStrings(doc.Values(field))
		}
	}
	return doc.Key()
}
