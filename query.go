package sqlsyntax

import "strings"

// QueryProvider produces alias-qualified column and result fragments for
// select contexts. It is obtained from Support.Query and carries the alias
// binding for one table occurrence within a statement.
type QueryProvider struct {
	desc    *Descriptor
	columns []string
	alias   string
}

// Alias returns the table alias bound to this provider.
func (p *QueryProvider) Alias() string { return p.alias }

// ColumnNames returns the entity's resolved column names in order.
func (p *QueryProvider) ColumnNames() []string { return p.columns }

// Columns returns the alias-qualified comma-joined list of all columns,
// as in "u.id, u.name".
func (p *QueryProvider) Columns() Fragment {
	fragments := make([]Fragment, len(p.columns))
	for i, c := range p.columns {
		fragments[i] = NewFragment(p.qualify(c))
	}
	return Join(fragments, ", ")
}

// Column returns the alias-qualified fragment for the named column, as in
// "u.id". The lookup is case-insensitive.
func (p *QueryProvider) Column(name string) (Fragment, error) {
	c, ok := findColumn(name, p.columns)
	if !ok {
		return Fragment{}, NewUnknownColumnError(name, p.columns)
	}
	return NewFragment(p.qualify(c)), nil
}

// Field converts the field-style identifier through the entity's naming
// rules and resolves the resulting column.
func (p *QueryProvider) Field(field string) (Fragment, error) {
	return p.Column(p.desc.ColumnName(field))
}

// ResultAll returns every column rendered with its result alias, as in
// "u.id AS i_on_u, u.name AS n_on_u".
func (p *QueryProvider) ResultAll() (Fragment, error) {
	fragments := make([]Fragment, len(p.columns))
	for i, c := range p.columns {
		rn, err := p.resultAliasName(c)
		if err != nil {
			return Fragment{}, err
		}
		fragments[i] = NewFragment(p.qualify(c) + " AS " + rn)
	}
	return Join(fragments, ", "), nil
}

// Result returns the named column rendered with its result alias, as in
// "u.id AS i_on_u". The lookup is case-insensitive.
func (p *QueryProvider) Result(name string) (Fragment, error) {
	c, ok := findColumn(name, p.columns)
	if !ok {
		return Fragment{}, NewUnknownColumnError(name, p.columns)
	}
	rn, err := p.resultAliasName(c)
	if err != nil {
		return Fragment{}, err
	}
	return NewFragment(p.qualify(c) + " AS " + rn), nil
}

// ResultName returns the provider of bare result-alias names used when
// mapping result rows back to entities and when composing subqueries.
func (p *QueryProvider) ResultName() *ResultNameProvider {
	return &ResultNameProvider{desc: p.desc, columns: p.columns, alias: p.alias}
}

func (p *QueryProvider) qualify(column string) string {
	if p.desc.ForceUpperCase {
		column = strings.ToUpper(column)
	}
	return p.alias + "." + column
}

// resultAliasName derives the result alias of a canonical column name:
// the shortened (or full) column name, the result delimiter and the table
// alias, underscore-joined.
func (p *QueryProvider) resultAliasName(column string) (string, error) {
	name := column
	if p.desc.ShortenedAlias {
		short, err := ShortenedName(column, p.columns)
		if err != nil {
			return "", err
		}
		name = short
	}
	return name + "_" + p.desc.Delimiter() + "_" + p.alias, nil
}

// ResultNameProvider produces the bare result-alias-name fragments of one
// aliased table occurrence, with no table qualifier.
type ResultNameProvider struct {
	desc    *Descriptor
	columns []string
	alias   string
}

// Alias returns the table alias the result names belong to.
func (p *ResultNameProvider) Alias() string { return p.alias }

// ColumnNames returns the entity's resolved column names in order.
func (p *ResultNameProvider) ColumnNames() []string { return p.columns }

// NamedColumns returns the ordered result-alias names of every column,
// as in ["i_on_u", "n_on_u"].
func (p *ResultNameProvider) NamedColumns() ([]Fragment, error) {
	fragments := make([]Fragment, len(p.columns))
	for i, c := range p.columns {
		rn, err := p.resultAliasName(c)
		if err != nil {
			return nil, err
		}
		fragments[i] = NewFragment(rn)
	}
	return fragments, nil
}

// Column returns the bare result-alias name of the named column, as in
// "i_on_u". The lookup is case-insensitive.
func (p *ResultNameProvider) Column(name string) (Fragment, error) {
	c, ok := findColumn(name, p.columns)
	if !ok {
		return Fragment{}, NewUnknownColumnError(name, p.columns)
	}
	rn, err := p.resultAliasName(c)
	if err != nil {
		return Fragment{}, err
	}
	return NewFragment(rn), nil
}

// Field converts the field-style identifier through the entity's naming
// rules and resolves the resulting column.
func (p *ResultNameProvider) Field(field string) (Fragment, error) {
	return p.Column(p.desc.ColumnName(field))
}

func (p *ResultNameProvider) resultAliasName(column string) (string, error) {
	name := column
	if p.desc.ShortenedAlias {
		short, err := ShortenedName(column, p.columns)
		if err != nil {
			return "", err
		}
		name = short
	}
	return name + "_" + p.desc.Delimiter() + "_" + p.alias, nil
}
