package sqlsyntax

import "log/slog"

// TableProvider produces table-reference fragments.
type TableProvider struct {
	desc   *Descriptor
	logger *slog.Logger
}

// Fragment returns the schema-qualified table name. Before returning it
// runs an advisory injection-risk check: a qualified name containing
// embedded whitespace or a statement separator is logged as a warning but
// still rendered, since table names may legitimately originate from
// configuration.
func (p *TableProvider) Fragment() Fragment {
	name := p.desc.QualifiedTableName()
	if p.desc.hasRiskyTableName() {
		p.logger.Warn("sqlsyntax: table name contains whitespace or a statement separator; verify it is not attacker-controlled",
			slog.String("entity", p.desc.Name),
			slog.String("table", name),
		)
	}
	return NewFragment(name)
}

// As returns the table reference bound to the given query provider's
// alias, rendered as "<qualified table> <alias>". When the alias equals
// the bare table name the alias text is elided and the binding is implied
// by the table name itself.
func (p *TableProvider) As(q *QueryProvider) Fragment {
	table := p.Fragment()
	if p.desc.TableName() == q.Alias() {
		return table
	}
	return table.Append(NewFragment(" " + q.Alias()))
}
