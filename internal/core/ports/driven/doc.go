// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Document: Read-only capability view of one indexed document
//   - DocumentStore: Document persistence
//   - FieldRegistry: Declarative per-field rendering configuration
//   - RenderContext: Helper invocation and URL building
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
