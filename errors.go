package sqlsyntax

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common failure modes.
var (
	// ErrUnknownColumn is returned when a requested column, field or result
	// name is not registered for an entity or subquery.
	ErrUnknownColumn = errors.New("sqlsyntax: unknown column")

	// ErrConfiguration is returned when column metadata resolution yields
	// zero columns, usually indicating a misconfigured connection name.
	ErrConfiguration = errors.New("sqlsyntax: invalid configuration")

	// ErrInternal is returned when an internal invariant is violated,
	// indicating a programming defect rather than a runtime condition.
	ErrInternal = errors.New("sqlsyntax: internal invariant violated")
)

// UnknownColumnError represents a lookup of a column, field or result name
// that is not registered. It carries the attempted name and the full list
// of registered names for diagnostics.
type UnknownColumnError struct {
	name    string
	columns []string
}

// Error returns the error string.
func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("sqlsyntax: column %q not found among [%s]", e.name, strings.Join(e.columns, ", "))
}

// Is reports whether the target error matches UnknownColumnError.
// This allows errors.Is(err, ErrUnknownColumn) to return true.
func (e *UnknownColumnError) Is(err error) bool {
	return err == ErrUnknownColumn
}

// Name returns the name that was looked up.
func (e *UnknownColumnError) Name() string {
	return e.name
}

// Columns returns the registered column names at the time of the lookup.
func (e *UnknownColumnError) Columns() []string {
	return e.columns
}

// NewUnknownColumnError returns a new UnknownColumnError for the given
// lookup name and registered columns.
func NewUnknownColumnError(name string, columns []string) *UnknownColumnError {
	return &UnknownColumnError{name: name, columns: columns}
}

// IsUnknownColumn returns true if the error is an UnknownColumnError.
func IsUnknownColumn(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownColumnError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownColumn)
}

// ConfigurationError represents a metadata fetch that returned zero columns
// for a table. The result is never cached; the caller should verify the
// connection name and the qualified table name.
type ConfigurationError struct {
	connection string
	table      string
}

// Error returns the error string.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sqlsyntax: no columns found for table %q on connection %q; verify the connection name and table name", e.table, e.connection)
}

// Is reports whether the target error matches ConfigurationError.
func (e *ConfigurationError) Is(err error) bool {
	return err == ErrConfiguration
}

// Connection returns the connection name used for the fetch.
func (e *ConfigurationError) Connection() string {
	return e.connection
}

// Table returns the qualified table name used for the fetch.
func (e *ConfigurationError) Table() string {
	return e.table
}

// NewConfigurationError returns a new ConfigurationError for the given
// connection and qualified table name.
func NewConfigurationError(connection, table string) *ConfigurationError {
	return &ConfigurationError{connection: connection, table: table}
}

// IsConfiguration returns true if the error is a ConfigurationError.
func IsConfiguration(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigurationError
	return errors.As(err, &e) || errors.Is(err, ErrConfiguration)
}

// InternalError represents a violated internal invariant, for example the
// alias-shortening scan failing to locate its target among the sibling
// columns. It signals a caller contract violation, not a runtime condition.
type InternalError struct {
	msg string
}

// Error returns the error string.
func (e *InternalError) Error() string {
	return fmt.Sprintf("sqlsyntax: internal: %s", e.msg)
}

// Is reports whether the target error matches InternalError.
func (e *InternalError) Is(err error) bool {
	return err == ErrInternal
}

// NewInternalError returns a new InternalError with the given message.
func NewInternalError(msg string) *InternalError {
	return &InternalError{msg: msg}
}

// IsInternal returns true if the error is an InternalError.
func IsInternal(err error) bool {
	if err == nil {
		return false
	}
	var e *InternalError
	return errors.As(err, &e) || errors.Is(err, ErrInternal)
}
