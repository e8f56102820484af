// Package migrations holds the goose SQL migrations, embedded so the server
// and the migrate command do not depend on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
