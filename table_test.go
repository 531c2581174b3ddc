package sqlsyntax_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlsyntax"
)

func TestTableProvider_Fragment(t *testing.T) {
	t.Run("schema-qualified name", func(t *testing.T) {
		s := sqlsyntax.NewSupport(&sqlsyntax.Descriptor{Name: "User", Schema: "public", Columns: []string{"id"}})
		assert.Equal(t, "public.users", s.Table().Fragment().Text())
	})

	t.Run("risky table name logs an advisory warning", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		s := sqlsyntax.NewSupport(
			&sqlsyntax.Descriptor{Name: "User", Table: "users; DROP TABLE users", Columns: []string{"id"}},
			sqlsyntax.WithLogger(logger),
		)
		frag := s.Table().Fragment()
		assert.Equal(t, "users; DROP TABLE users", frag.Text(), "the fragment is still produced")
		assert.Contains(t, buf.String(), "statement separator")
	})

	t.Run("clean table name logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		s := sqlsyntax.NewSupport(
			&sqlsyntax.Descriptor{Name: "User", Columns: []string{"id"}},
			sqlsyntax.WithLogger(logger),
		)
		s.Table().Fragment()
		assert.Empty(t, buf.String())
	})
}

func TestTableProvider_As(t *testing.T) {
	background := context.Background()
	desc := &sqlsyntax.Descriptor{Name: "User", Schema: "public", Columns: []string{"id", "name"}}
	s := sqlsyntax.NewSupport(desc)

	t.Run("distinct alias", func(t *testing.T) {
		u, err := s.Query(background, "u")
		require.NoError(t, err)
		assert.Equal(t, "public.users u", s.Table().As(u).Text())
	})

	t.Run("alias equal to the bare table name is elided", func(t *testing.T) {
		u, err := s.Query(background, "users")
		require.NoError(t, err)
		frag := s.Table().As(u)
		assert.Equal(t, "public.users", frag.Text())
		assert.NotContains(t, frag.Text(), " users users")
	})
}
