package sqlsyntax

import (
	"context"
	"fmt"
	"log/slog"
)

// Support wires an entity Descriptor to the shared column cache, the
// metadata fetch collaborator and the logger, and constructs the fragment
// providers for the entity. A Support is immutable after construction and
// safe for concurrent use.
type Support struct {
	desc   *Descriptor
	cache  *ColumnCache
	fetch  FetchFunc
	logger *slog.Logger
}

// Option configures a Support.
type Option func(*Support)

// WithCache sets the column metadata cache shared by this Support. Supports
// for entities on the same connection should share one cache.
func WithCache(c *ColumnCache) Option {
	return func(s *Support) { s.cache = c }
}

// WithFetchFunc sets the metadata fetch collaborator invoked on cache miss.
// Entities with an explicit column list never invoke it.
func WithFetchFunc(f FetchFunc) Option {
	return func(s *Support) { s.fetch = f }
}

// WithLogger sets the logger used for advisory warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Support) { s.logger = l }
}

// NewSupport returns a Support for the given descriptor. Without options it
// uses a private cache, no fetch collaborator and slog.Default().
func NewSupport(desc *Descriptor, opts ...Option) *Support {
	s := &Support{desc: desc}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewColumnCache()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Descriptor returns the entity descriptor.
func (s *Support) Descriptor() *Descriptor { return s.desc }

// Cache returns the column metadata cache.
func (s *Support) Cache() *ColumnCache { return s.cache }

// Columns resolves the entity's ordered column names: the explicit list
// when the descriptor carries one, otherwise the cache-resolved list
// fetched through the metadata collaborator.
func (s *Support) Columns(ctx context.Context) ([]string, error) {
	if len(s.desc.Columns) > 0 {
		return s.desc.Columns, nil
	}
	if s.fetch == nil {
		return nil, fmt.Errorf("sqlsyntax: entity %q has no explicit columns and no fetch function: %w", s.desc.Name, ErrConfiguration)
	}
	return s.cache.Columns(ctx, s.desc.ConnectionName, s.desc.QualifiedTableName(), s.fetch)
}

// Table returns the table fragment provider for the entity.
func (s *Support) Table() *TableProvider {
	return &TableProvider{desc: s.desc, logger: s.logger}
}

// Column returns the bare column fragment provider for insert/update
// contexts, resolving the entity's columns first.
func (s *Support) Column(ctx context.Context) (*ColumnProvider, error) {
	columns, err := s.Columns(ctx)
	if err != nil {
		return nil, err
	}
	return &ColumnProvider{desc: s.desc, columns: columns}, nil
}

// Query returns the alias-qualified fragment provider for select contexts,
// resolving the entity's columns first.
func (s *Support) Query(ctx context.Context, alias string) (*QueryProvider, error) {
	columns, err := s.Columns(ctx)
	if err != nil {
		return nil, err
	}
	return &QueryProvider{desc: s.desc, columns: columns, alias: alias}, nil
}
