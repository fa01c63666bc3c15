// Package db embeds the SQL migrations for the targets schema.
package db

import "embed"

// Migrations holds the goose migration files under "migrations".
//
//go:embed migrations/*.sql
var Migrations embed.FS
