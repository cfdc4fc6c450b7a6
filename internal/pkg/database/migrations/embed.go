package migrations

import "embed"

// FS contém as migrações SQL (formato goose) do GoFulfill.
//
//go:embed *.sql
var FS embed.FS
