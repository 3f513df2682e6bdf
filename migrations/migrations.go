// Package migrations embeds the SQL migration files so the server binary
// can bring the schema up to date at startup without shipping loose files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
