package domain

import "html/template"

// Value is a display value tagged with its markup safety. Unsafe values
// are escaped when formatted; safe values (highlight fragments, helper
// output, generated markup) pass through untouched.
type Value struct {
	text string
	safe bool
}

// Unsafe wraps raw text that must be escaped before rendering.
func Unsafe(text string) Value {
	return Value{text: text}
}

// Safe wraps text that is already valid markup and must not be re-escaped.
func Safe(text string) Value {
	return Value{text: text, safe: true}
}

// Text returns the underlying text without escaping.
func (v Value) Text() string {
	return v.text
}

// IsSafe reports whether the value may be rendered without escaping.
func (v Value) IsSafe() bool {
	return v.safe
}

// HTML returns the value as markup, escaping unless the value is safe.
func (v Value) HTML() template.HTML {
	if v.safe {
		return template.HTML(v.text)
	}
	return template.HTML(template.HTMLEscapeString(v.text))
}

// ResolvedValue is the outcome of field-value resolution: zero or more
// tagged values. A nil or empty ResolvedValue means absence.
type ResolvedValue []Value

// Present reports whether resolution produced any value.
func (rv ResolvedValue) Present() bool {
	return len(rv) > 0
}

// Texts returns the underlying texts without escaping.
func (rv ResolvedValue) Texts() []string {
	if len(rv) == 0 {
		return nil
	}
	out := make([]string, len(rv))
	for i, v := range rv {
		out[i] = v.Text()
	}
	return out
}

// UnsafeValues builds a ResolvedValue from raw texts.
func UnsafeValues(texts ...string) ResolvedValue {
	if len(texts) == 0 {
		return nil
	}
	out := make(ResolvedValue, len(texts))
	for i, t := range texts {
		out[i] = Unsafe(t)
	}
	return out
}

// SafeValues builds a ResolvedValue from already-safe markup fragments.
func SafeValues(texts ...string) ResolvedValue {
	if len(texts) == 0 {
		return nil
	}
	out := make(ResolvedValue, len(texts))
	for i, t := range texts {
		out[i] = Safe(t)
	}
	return out
}
