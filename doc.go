// Package sqlsyntax derives SQL identifiers and assembles them into literal
// SQL text fragments with positional bound parameters.
//
// The package is the identifier-resolution layer of a type-aware SQL
// construction stack. Given a Descriptor for a logical entity it derives the
// table name, the column names and disambiguated result aliases, and exposes
// a family of providers that render these names as Fragment values:
//
//	desc := &sqlsyntax.Descriptor{Name: "User", ConnectionName: "default"}
//	s := sqlsyntax.NewSupport(desc, sqlsyntax.WithFetchFunc(fetch))
//	u, err := s.Query(context.Background(), "u")
//	if err != nil { ... }
//	frag, err := u.ResultAll() // "u.id AS i_on_u, u.name AS n_on_u"
//
// Providers are stateless after construction; the only shared mutable state
// is the ColumnCache, which is safe for concurrent use. The package never
// parses or executes SQL: it only derives identifiers and assembles text,
// leaving execution and connection management to the caller.
//
// Column metadata is obtained through an injected FetchFunc. The
// dialect/sql sub-package provides a ready-made implementation backed by
// database/sql for PostgreSQL, MySQL and SQLite.
package sqlsyntax
