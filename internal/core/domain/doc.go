// Package domain defines the core business entities for Vetrina.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An indexed document snapshot with multi-valued fields
//   - FieldConfig: Declarative per-field rendering policy
//   - Value / ResolvedValue: Markup-safety-tagged display values
//   - AlternateLink: An alternate-representation link descriptor
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
