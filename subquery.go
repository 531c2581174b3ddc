package sqlsyntax

// SubqueryProvider composes the result names of one or more aliased table
// occurrences under a new outer alias, representing a subquery in the FROM
// clause of an enclosing statement. Each member column is addressed as
// "<outer>.<member result name>" and re-aliased one level deeper as
// "<member result name>_<delimiter>_<outer>".
//
// When members share a column name, lookups resolve to the first member in
// composition order that registers the name.
type SubqueryProvider struct {
	alias     string
	delimiter string
	members   []*ResultNameProvider
}

// ComposeSubquery returns a subquery provider exposing every member's
// result names under the outer alias. An empty delimiter selects
// DefaultResultDelimiter.
func ComposeSubquery(alias, delimiter string, members ...*ResultNameProvider) *SubqueryProvider {
	if delimiter == "" {
		delimiter = DefaultResultDelimiter
	}
	return &SubqueryProvider{alias: alias, delimiter: delimiter, members: members}
}

// Alias returns the outer alias.
func (p *SubqueryProvider) Alias() string { return p.alias }

// Columns returns the outer-qualified comma-joined list of every member's
// result names, as in "sq.i_on_u, sq.n_on_u".
func (p *SubqueryProvider) Columns() (Fragment, error) {
	named, err := p.namedColumns()
	if err != nil {
		return Fragment{}, err
	}
	fragments := make([]Fragment, len(named))
	for i, n := range named {
		fragments[i] = NewFragment(p.alias + "." + n)
	}
	return Join(fragments, ", "), nil
}

// ResultAll returns every member result name re-aliased under the outer
// alias, as in "sq.i_on_u AS i_on_u_on_sq, sq.n_on_u AS n_on_u_on_sq".
func (p *SubqueryProvider) ResultAll() (Fragment, error) {
	named, err := p.namedColumns()
	if err != nil {
		return Fragment{}, err
	}
	fragments := make([]Fragment, len(named))
	for i, n := range named {
		fragments[i] = NewFragment(p.alias + "." + n + " AS " + n + "_" + p.delimiter + "_" + p.alias)
	}
	return Join(fragments, ", "), nil
}

// Column resolves the named column through the members, in composition
// order, and returns its outer-qualified result name, as in "sq.i_on_u".
// The lookup is case-insensitive; a name registered by several members
// resolves to the first match. A miss yields an UnknownColumnError listing
// every member's registered names.
func (p *SubqueryProvider) Column(name string) (Fragment, error) {
	for _, m := range p.members {
		if _, ok := findColumn(name, m.columns); !ok {
			continue
		}
		rn, err := m.Column(name)
		if err != nil {
			return Fragment{}, err
		}
		return NewFragment(p.alias + "." + rn.Text()), nil
	}
	return Fragment{}, NewUnknownColumnError(name, p.registeredColumns())
}

// Result resolves the named column and returns it re-aliased under the
// outer alias, as in "sq.i_on_u AS i_on_u_on_sq".
func (p *SubqueryProvider) Result(name string) (Fragment, error) {
	c, err := p.Column(name)
	if err != nil {
		return Fragment{}, err
	}
	rn := c.Text()[len(p.alias)+1:]
	return NewFragment(c.Text() + " AS " + rn + "_" + p.delimiter + "_" + p.alias), nil
}

// ResultName returns the provider of this subquery's own bare result
// names, enabling composition of a subquery into a further enclosing
// subquery.
func (p *SubqueryProvider) ResultName() (*ResultNameProvider, error) {
	named, err := p.namedColumns()
	if err != nil {
		return nil, err
	}
	return &ResultNameProvider{
		desc:    &Descriptor{Name: p.alias, ResultDelimiter: p.delimiter},
		columns: named,
		alias:   p.alias,
	}, nil
}

func (p *SubqueryProvider) namedColumns() ([]string, error) {
	var named []string
	for _, m := range p.members {
		fragments, err := m.NamedColumns()
		if err != nil {
			return nil, err
		}
		for _, f := range fragments {
			named = append(named, f.Text())
		}
	}
	return named, nil
}

func (p *SubqueryProvider) registeredColumns() []string {
	var columns []string
	for _, m := range p.members {
		columns = append(columns, m.columns...)
	}
	return columns
}

// PartialSubqueryProvider is a subquery that surfaces only one underlying
// table occurrence's columns, nested one level deeper. It records the
// member's own alias, so a column resolves through the member alias, the
// member's result name and the outer alias simultaneously: column "id" of
// member alias "u" inside outer alias "sq" renders as "sq.i_on_u" and
// re-aliases as "i_on_u_on_sq".
type PartialSubqueryProvider struct {
	sub    *SubqueryProvider
	member *ResultNameProvider
}

// ComposePartialSubquery returns a partial subquery provider over exactly
// one member. An empty delimiter selects DefaultResultDelimiter.
func ComposePartialSubquery(alias, delimiter string, member *ResultNameProvider) *PartialSubqueryProvider {
	return &PartialSubqueryProvider{
		sub:    ComposeSubquery(alias, delimiter, member),
		member: member,
	}
}

// Alias returns the outer alias.
func (p *PartialSubqueryProvider) Alias() string { return p.sub.Alias() }

// MemberAlias returns the underlying member's own alias.
func (p *PartialSubqueryProvider) MemberAlias() string { return p.member.Alias() }

// Columns returns the outer-qualified comma-joined list of the member's
// result names.
func (p *PartialSubqueryProvider) Columns() (Fragment, error) { return p.sub.Columns() }

// ResultAll returns the member's result names re-aliased under the outer
// alias.
func (p *PartialSubqueryProvider) ResultAll() (Fragment, error) { return p.sub.ResultAll() }

// Column resolves the named column of the member and returns its
// outer-qualified result name.
func (p *PartialSubqueryProvider) Column(name string) (Fragment, error) { return p.sub.Column(name) }

// Result resolves the named column and returns it re-aliased under the
// outer alias.
func (p *PartialSubqueryProvider) Result(name string) (Fragment, error) { return p.sub.Result(name) }

// ResultName returns the provider of the partial subquery's own bare
// result names for further nesting.
func (p *PartialSubqueryProvider) ResultName() (*ResultNameProvider, error) {
	return p.sub.ResultName()
}
