// Package dialect names the database dialects whose schema catalogs the
// dialect/sql sub-package can introspect.
package dialect

// Supported dialects.
const (
	// Postgres is the PostgreSQL dialect.
	Postgres = "postgres"
	// MySQL is the MySQL/MariaDB dialect.
	MySQL = "mysql"
	// SQLite is the SQLite dialect.
	SQLite = "sqlite"
)
