package sqlsyntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/sqlsyntax"
)

func TestDescriptor_TableName(t *testing.T) {
	tests := []struct {
		name string
		desc sqlsyntax.Descriptor
		want string
	}{
		{"pluralized logical name", sqlsyntax.Descriptor{Name: "User"}, "users"},
		{"multi-word name", sqlsyntax.Descriptor{Name: "UserGroup"}, "user_groups"},
		{"capitalized irregulars pluralize regularly", sqlsyntax.Descriptor{Name: "Person"}, "persons"},
		{"sibilant plural", sqlsyntax.Descriptor{Name: "Address"}, "addresses"},
		{"override wins", sqlsyntax.Descriptor{Name: "User", Table: "members"}, "members"},
		{
			"rewrite rules apply",
			sqlsyntax.Descriptor{
				Name:      "ServiceCode",
				NameRules: []sqlsyntax.RewriteRule{sqlsyntax.MustRewriteRule("Codes$", "Cds")},
			},
			"service_cds",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.desc.TableName())
		})
	}
}

func TestDescriptor_QualifiedTableName(t *testing.T) {
	d := sqlsyntax.Descriptor{Name: "User", Schema: "public"}
	assert.Equal(t, "public.users", d.QualifiedTableName())

	d.Schema = ""
	assert.Equal(t, "users", d.QualifiedTableName())
}

func TestDescriptor_Defaults(t *testing.T) {
	d := sqlsyntax.Descriptor{Name: "User"}
	assert.True(t, d.SnakeCase(), "snake_case conversion is on by default")
	assert.Equal(t, "on", d.Delimiter())

	d.NoSnakeCase = true
	d.ResultDelimiter = "in"
	assert.False(t, d.SnakeCase())
	assert.Equal(t, "in", d.Delimiter())
}

func TestDescriptor_ColumnName(t *testing.T) {
	d := sqlsyntax.Descriptor{Name: "User"}
	assert.Equal(t, "service_code", d.ColumnName("serviceCode"))

	d.NoSnakeCase = true
	assert.Equal(t, "serviceCode", d.ColumnName("serviceCode"))
}
