package sqlsyntax_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/sqlsyntax"
)

func newColumnProvider(t *testing.T, desc *sqlsyntax.Descriptor) *sqlsyntax.ColumnProvider {
	t.Helper()
	p, err := sqlsyntax.NewSupport(desc).Column(context.Background())
	require.NoError(t, err)
	return p
}

func TestColumnProvider_Column(t *testing.T) {
	p := newColumnProvider(t, &sqlsyntax.Descriptor{Name: "User", Columns: []string{"id", "service_code"}})

	t.Run("registered column", func(t *testing.T) {
		frag, err := p.Column("id")
		require.NoError(t, err)
		assert.Equal(t, "id", frag.Text())
		assert.Empty(t, frag.Args())
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		upper, err := p.Column("ID")
		require.NoError(t, err)
		lower, err2 := p.Column("id")
		require.NoError(t, err2)
		assert.Equal(t, lower.Text(), upper.Text())
	})

	t.Run("unknown column lists the registered set", func(t *testing.T) {
		_, err := p.Column("age")
		require.Error(t, err)
		assert.True(t, sqlsyntax.IsUnknownColumn(err))
		assert.Contains(t, err.Error(), "id, service_code")
	})
}

func TestColumnProvider_Field(t *testing.T) {
	p := newColumnProvider(t, &sqlsyntax.Descriptor{Name: "User", Columns: []string{"id", "service_code"}})

	frag, err := p.Field("serviceCode")
	require.NoError(t, err)
	assert.Equal(t, "service_code", frag.Text())

	// Already-converted names resolve through the same path.
	frag, err = p.Field("service_code")
	require.NoError(t, err)
	assert.Equal(t, "service_code", frag.Text())

	_, err = p.Field("unknownField")
	require.Error(t, err)
	assert.True(t, sqlsyntax.IsUnknownColumn(err))
}

func TestColumnProvider_ForceUpperCase(t *testing.T) {
	p := newColumnProvider(t, &sqlsyntax.Descriptor{Name: "User", Columns: []string{"id", "name"}, ForceUpperCase: true})

	frag, err := p.Column("id")
	require.NoError(t, err)
	assert.Equal(t, "ID", frag.Text())

	assert.Equal(t, "ID, NAME", p.AllColumns().Text())
}

func TestColumnProvider_AllColumns(t *testing.T) {
	p := newColumnProvider(t, &sqlsyntax.Descriptor{Name: "User", Columns: []string{"id", "name", "created_at"}})
	assert.Equal(t, "id, name, created_at", p.AllColumns().Text())
}
