// Package liftstrong holds assets embedded into the binaries.
package liftstrong

import "embed"

// Migrations contains the SQL schema migrations applied at startup.
//
//go:embed migrations/*.sql
var Migrations embed.FS
