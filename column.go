package sqlsyntax

import (
	"strings"

	"golang.org/x/text/cases"
)

// findColumn looks up name among the registered columns using Unicode case
// folding and returns the canonical registered spelling.
func findColumn(name string, columns []string) (string, bool) {
	// A Caser carries state between calls, so construct one per lookup
	// instead of sharing a package-level instance across goroutines.
	folder := cases.Fold()
	key := folder.String(name)
	for _, c := range columns {
		if folder.String(c) == key {
			return c, true
		}
	}
	return "", false
}

// ColumnProvider produces bare column-reference fragments for insert and
// update contexts, where no table alias qualifies the column.
type ColumnProvider struct {
	desc    *Descriptor
	columns []string
}

// Columns returns the entity's resolved column names in order.
func (p *ColumnProvider) Columns() []string { return p.columns }

// Column returns the fragment for the named column. The lookup is
// case-insensitive; an unregistered name yields an UnknownColumnError
// listing the registered columns.
func (p *ColumnProvider) Column(name string) (Fragment, error) {
	c, ok := findColumn(name, p.columns)
	if !ok {
		return Fragment{}, NewUnknownColumnError(name, p.columns)
	}
	return NewFragment(p.render(c)), nil
}

// Field converts the field-style identifier through the entity's naming
// rules and resolves the resulting column, so both pre-conversion field
// names and already-converted column names resolve through one path.
func (p *ColumnProvider) Field(field string) (Fragment, error) {
	return p.Column(p.desc.ColumnName(field))
}

// AllColumns returns the comma-joined list of every column, for insert
// column lists.
func (p *ColumnProvider) AllColumns() Fragment {
	fragments := make([]Fragment, len(p.columns))
	for i, c := range p.columns {
		fragments[i] = NewFragment(p.render(c))
	}
	return Join(fragments, ", ")
}

func (p *ColumnProvider) render(column string) string {
	if p.desc.ForceUpperCase {
		return strings.ToUpper(column)
	}
	return column
}
