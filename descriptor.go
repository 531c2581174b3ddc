package sqlsyntax

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// DefaultResultDelimiter separates a result-column alias from its owning
// table alias, as in "i_on_u" for column "id" of alias "u".
const DefaultResultDelimiter = "on"

// Descriptor is the per-entity configuration consumed by every provider.
// It is supplied once per logical entity by the caller and must not be
// mutated afterwards; providers hold a non-owning reference to it.
type Descriptor struct {
	// Name is the logical entity name, e.g. "User". The default table
	// name is derived from it unless Table is set.
	Name string

	// ConnectionName identifies the connection whose schema catalog
	// resolves this entity's columns. It is one half of the cache key.
	ConnectionName string

	// Schema optionally qualifies the table name, as in "public.users".
	Schema string

	// Table overrides the derived table name when non-empty.
	Table string

	// Columns lists the entity's column names explicitly. When empty the
	// columns are resolved through the metadata cache.
	Columns []string

	// NameRules are applied, in order, before case conversion whenever a
	// field name is converted to a column name.
	NameRules []RewriteRule

	// ForceUpperCase renders column text upper-cased. Derived result
	// alias names are unaffected.
	ForceUpperCase bool

	// ShortenedAlias enables the collision-resolved shortening of result
	// alias names ("i_on_u" instead of "id_on_u").
	ShortenedAlias bool

	// NoSnakeCase disables snake_case conversion of field names. The zero
	// value keeps the conversion enabled, the common configuration.
	NoSnakeCase bool

	// ResultDelimiter overrides DefaultResultDelimiter when non-empty.
	ResultDelimiter string
}

// SnakeCase reports whether field names are converted to snake_case.
func (d *Descriptor) SnakeCase() bool { return !d.NoSnakeCase }

// Delimiter returns the effective result delimiter.
func (d *Descriptor) Delimiter() string {
	if d.ResultDelimiter != "" {
		return d.ResultDelimiter
	}
	return DefaultResultDelimiter
}

// TableName returns the bare table name: the Table override when set,
// otherwise the pluralized logical name converted through the entity's
// naming rules ("UserGroup" -> "user_groups").
func (d *Descriptor) TableName() string {
	if d.Table != "" {
		return d.Table
	}
	return ToColumnName(inflect.Pluralize(d.Name), d.NameRules, d.SnakeCase())
}

// QualifiedTableName returns the schema-qualified table name, or the bare
// table name when no schema is configured.
func (d *Descriptor) QualifiedTableName() string {
	if d.Schema == "" {
		return d.TableName()
	}
	return d.Schema + "." + d.TableName()
}

// ColumnName converts a field-style identifier to this entity's column
// naming convention.
func (d *Descriptor) ColumnName(field string) string {
	return ToColumnName(field, d.NameRules, d.SnakeCase())
}

// hasRiskyTableName reports whether the qualified table name contains
// embedded whitespace or a statement separator. Table names are usually
// developer-controlled but may originate from configuration, so providers
// emit an advisory warning rather than failing.
func (d *Descriptor) hasRiskyTableName() bool {
	name := d.QualifiedTableName()
	return strings.ContainsAny(name, " \t\r\n;")
}
