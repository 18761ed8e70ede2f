// Package contractscan holds the embedded database migrations applied by the
// migrate command.
package contractscan

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
