// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The rendering pipeline lives here: the field-value resolver and its
// strategy chain, the list-grammar formatter, the heading/title
// resolver, and the alternate-link generator.
package services
