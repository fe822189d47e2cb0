// Package file provides the TOML-backed field configuration registry.
//
// The configuration file declares the show-field and facet-field
// namespaces plus the heading/title candidate lists. Permissive knobs
// (bool-or-string, string-or-list) are normalised into typed records at
// load time, so the rendering core never sees untyped configuration.
package file
