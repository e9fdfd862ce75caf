// Package migrations embeds the PostgreSQL schema for the employee store.
package migrations

import "embed"

// FS holds the versioned migration files at its root.
//
//go:embed *.sql
var FS embed.FS

// Dir is the directory within FS containing the migrations.
const Dir = "."
