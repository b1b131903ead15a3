// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the goose SQL migrations, one directory per database driver.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS
