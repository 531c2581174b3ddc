// Package sql provides a column-metadata fetcher backed by database/sql,
// for use as the sqlsyntax fetch collaborator.
package sql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/syssam/sqlsyntax"
	"github.com/syssam/sqlsyntax/dialect"
)

// validIdentifierRe validates SQL identifiers (alphanumeric, underscores,
// dots for schema.name).
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// ColumnFetcher returns a fetch function reading the ordered column names
// of a table from the schema catalog of the given dialect: the
// information_schema.columns view for Postgres and MySQL, the
// pragma_table_info table-valued function for SQLite. The caller owns db;
// the connection name passed at fetch time only keys the cache and is not
// interpreted here.
func ColumnFetcher(dialectName string, db *sql.DB) sqlsyntax.FetchFunc {
	return func(ctx context.Context, _, table string) ([]string, error) {
		if !isValidIdentifier(table) {
			return nil, fmt.Errorf("dialect/sql: invalid table name: %q", table)
		}
		query, args, err := columnsQuery(dialectName, table)
		if err != nil {
			return nil, err
		}
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("dialect/sql: fetching columns of %q: %w", table, err)
		}
		defer rows.Close()
		var columns []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				return nil, fmt.Errorf("dialect/sql: scanning column name: %w", err)
			}
			columns = append(columns, name)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("dialect/sql: fetching columns of %q: %w", table, err)
		}
		return columns, nil
	}
}

// columnsQuery builds the catalog query for the given dialect and
// qualified table name.
func columnsQuery(dialectName, table string) (string, []any, error) {
	schema, name := splitQualified(table)
	switch dialectName {
	case dialect.Postgres:
		if schema != "" {
			return `SELECT column_name FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position`,
				[]any{schema, name}, nil
		}
		return `SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position`,
			[]any{name}, nil
	case dialect.MySQL:
		if schema != "" {
			return `SELECT column_name FROM information_schema.columns WHERE table_schema = ? AND table_name = ? ORDER BY ordinal_position`,
				[]any{schema, name}, nil
		}
		return `SELECT column_name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position`,
			[]any{name}, nil
	case dialect.SQLite:
		return `SELECT name FROM pragma_table_info(?)`, []any{name}, nil
	default:
		return "", nil, fmt.Errorf("dialect/sql: unsupported dialect: %q", dialectName)
	}
}

// splitQualified splits "schema.table" into its parts. A bare table name
// returns an empty schema.
func splitQualified(table string) (schema, name string) {
	if i := strings.LastIndex(table, "."); i >= 0 {
		return table[:i], table[i+1:]
	}
	return "", table
}
