// Package migrations embeds the versioned SQL migrations for the
// document store.
package migrations

import "embed"

// FS holds every .up.sql migration, applied in version order.
//
//go:embed *.sql
var FS embed.FS
