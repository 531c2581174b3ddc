package sqlsyntax

import "strings"

// Fragment is an immutable pair of SQL text and its positional bound
// parameters. Fragments compose by concatenating both the text and the
// parameter list, so the parameter order always matches the placeholder
// order inside the text.
type Fragment struct {
	text string
	args []any
}

// NewFragment returns a fragment with the given text and parameters.
func NewFragment(text string, args ...any) Fragment {
	return Fragment{text: text, args: args}
}

// Text returns the SQL text of the fragment.
func (f Fragment) Text() string { return f.text }

// Args returns a copy of the bound parameters in placeholder order.
func (f Fragment) Args() []any {
	if len(f.args) == 0 {
		return nil
	}
	args := make([]any, len(f.args))
	copy(args, f.args)
	return args
}

// IsEmpty reports whether the fragment carries no text and no parameters.
func (f Fragment) IsEmpty() bool {
	return f.text == "" && len(f.args) == 0
}

// Append returns a new fragment holding f's text followed by g's text and
// f's parameters followed by g's parameters. Neither operand is modified.
func (f Fragment) Append(g Fragment) Fragment {
	args := make([]any, 0, len(f.args)+len(g.args))
	args = append(args, f.args...)
	args = append(args, g.args...)
	return Fragment{text: f.text + g.text, args: args}
}

// String implements fmt.Stringer for debugging purposes.
func (f Fragment) String() string { return f.text }

// Join concatenates the given fragments, inserting sep between the text of
// adjacent fragments. Parameters are concatenated in fragment order.
func Join(fragments []Fragment, sep string) Fragment {
	if len(fragments) == 0 {
		return Fragment{}
	}
	var (
		b    strings.Builder
		args []any
	)
	for i, f := range fragments {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f.text)
		args = append(args, f.args...)
	}
	return Fragment{text: b.String(), args: args}
}
