package sql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlsyntax/dialect"
)

func TestColumnFetcher_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	fetch := ColumnFetcher(dialect.Postgres, db)

	t.Run("schema-qualified table", func(t *testing.T) {
		mock.ExpectQuery(`SELECT column_name FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 ORDER BY ordinal_position`).
			WithArgs("public", "users").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name"))

		columns, err := fetch(context.Background(), "default", "public.users")
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, columns)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bare table uses the current schema", func(t *testing.T) {
		mock.ExpectQuery(`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position`).
			WithArgs("users").
			WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))

		columns, err := fetch(context.Background(), "default", "users")
		require.NoError(t, err)
		assert.Equal(t, []string{"id"}, columns)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query errors propagate", func(t *testing.T) {
		cause := errors.New("connection refused")
		mock.ExpectQuery(`SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position`).
			WithArgs("users").
			WillReturnError(cause)

		_, err := fetch(context.Background(), "default", "users")
		assert.ErrorIs(t, err, cause)
	})
}

func TestColumnFetcher_MySQL(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	fetch := ColumnFetcher(dialect.MySQL, db)

	mock.ExpectQuery(`SELECT column_name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name"))

	columns, err := fetch(context.Background(), "default", "users")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, columns)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnFetcher_SQLite(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()
	fetch := ColumnFetcher(dialect.SQLite, db)

	mock.ExpectQuery(`SELECT name FROM pragma_table_info(?)`).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("id").AddRow("name"))

	columns, err := fetch(context.Background(), "default", "users")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, columns)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnFetcher_Validation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("unsupported dialect", func(t *testing.T) {
		fetch := ColumnFetcher("oracle", db)
		_, err := fetch(context.Background(), "default", "users")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported dialect")
	})

	t.Run("invalid table name", func(t *testing.T) {
		fetch := ColumnFetcher(dialect.Postgres, db)
		_, err := fetch(context.Background(), "default", "users; DROP TABLE users")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid table name")
	})
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		table  string
		schema string
		name   string
	}{
		{"users", "", "users"},
		{"public.users", "public", "users"},
		{"warehouse.public.users", "warehouse.public", "users"},
	}
	for _, tt := range tests {
		schema, name := splitQualified(tt.table)
		assert.Equal(t, tt.schema, schema, tt.table)
		assert.Equal(t, tt.name, name, tt.table)
	}
}
