// Package migrations embeds the goose SQL migrations of the database schema.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// FS holds every *.sql migration, applied in version order by goose.
//
//go:embed *.sql
var FS embed.FS

// NewProvider returns a goose provider for FS against a PostgreSQL db opened
// with the pgx stdlib driver.
func NewProvider(db *sql.DB, opts ...goose.ProviderOption) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db, FS, opts...)
}
