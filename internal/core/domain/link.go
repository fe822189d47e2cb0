package domain

// RelAlternate is the link relation for alternate representations.
const RelAlternate = "alternate"

// AlternateLink describes one alternate-representation link for a
// document export format. Links are ephemeral, produced per call.
type AlternateLink struct {
	// Rel is the link relation, always RelAlternate.
	Rel string

	// Title is the export format identifier.
	Title string

	// ContentType is the MIME type of the representation.
	ContentType string

	// Href is the export URL for the document/format pair.
	Href string
}

// AlternateLinkOptions configures alternate-link generation.
type AlternateLinkOptions struct {
	// Unique keeps only the first-encountered format per content type.
	Unique bool

	// Exclude drops the named format identifiers from the output.
	Exclude []string
}
