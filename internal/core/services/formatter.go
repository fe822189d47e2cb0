package services

import (
	"html/template"
	"strings"

	"github.com/custodia-labs/vetrina/internal/core/domain"
)

// ListJoiner joins multi-valued results with natural-language list
// grammar. The defaults produce "a", "a and b", and "a, b, and c".
type ListJoiner struct {
	// WordsConnector separates elements in lists of three or more.
	WordsConnector string

	// TwoWordsConnector joins exactly two elements.
	TwoWordsConnector string

	// LastWordConnector precedes the final element in lists of three
	// or more.
	LastWordConnector string
}

// DefaultListJoiner returns the English list grammar.
func DefaultListJoiner() ListJoiner {
	return ListJoiner{
		WordsConnector:    ", ",
		TwoWordsConnector: " and ",
		LastWordConnector: ", and ",
	}
}

// Join formats a resolved value as a single markup-safe string. Each
// element is escaped independently unless it carries the safe flag, then
// the elements are joined. The joined result is safe as a whole and must
// not be re-escaped downstream.
func (j ListJoiner) Join(rv domain.ResolvedValue) template.HTML {
	if !rv.Present() {
		return ""
	}

	parts := make([]string, len(rv))
	for i, v := range rv {
		parts[i] = string(v.HTML())
	}
	return template.HTML(j.joinParts(parts))
}

// JoinStrings joins plain texts with the same list grammar, without any
// escaping. Used for non-markup surfaces such as headings and titles.
func (j ListJoiner) JoinStrings(parts []string) string {
	return j.joinParts(parts)
}

func (j ListJoiner) joinParts(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + j.TwoWordsConnector + parts[1]
	default:
		head := strings.Join(parts[:len(parts)-1], j.WordsConnector)
		return head + j.LastWordConnector + parts[len(parts)-1]
	}
}

// FormatValue formats a resolved value with the default list grammar.
func FormatValue(rv domain.ResolvedValue) template.HTML {
	return DefaultListJoiner().Join(rv)
}
