// Package migrations embeds the SQL schema files so the binaries can
// migrate without a migrations directory shipped alongside them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
