package sqlsyntax

import (
	"regexp"
	"strings"
)

// RewriteRule is an ordered (pattern, replacement) pair applied to an
// identifier before case conversion. Rules are applied in sequence, each
// rule seeing the previous rule's output.
type RewriteRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// NewRewriteRule compiles the given pattern and returns a rewrite rule
// replacing every match with replacement.
func NewRewriteRule(pattern, replacement string) (RewriteRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return RewriteRule{}, err
	}
	return RewriteRule{pattern: re, replacement: replacement}, nil
}

// MustRewriteRule is like NewRewriteRule but panics if the pattern does not
// compile. It simplifies the declaration of static rule sets.
func MustRewriteRule(pattern, replacement string) RewriteRule {
	r, err := NewRewriteRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

// Pattern returns the source text of the rule's pattern.
func (r RewriteRule) Pattern() string { return r.pattern.String() }

// Replacement returns the rule's replacement text.
func (r RewriteRule) Replacement() string { return r.replacement }

func (r RewriteRule) apply(s string) string {
	return r.pattern.ReplaceAllString(s, r.replacement)
}

var (
	acronymRe         = regexp.MustCompile(`[A-Z]{2,}`)
	trailingAcronymRe = regexp.MustCompile(`[A-Z]{2,}$`)
	upperRe           = regexp.MustCompile(`[A-Z]`)
)

// ToColumnName converts an arbitrary identifier to a column name. The
// rewrite rules are applied first, in order. If snakeCase is false the
// rewritten identifier is returned unchanged; otherwise it is converted
// from camelCase/PascalCase to snake_case with acronym awareness:
//
//   - a trailing run of two or more uppercase letters is treated as a unit
//     and becomes "_" + its lower-cased text ("userID" -> "user_id"),
//   - any other uppercase run splits before its last letter, which starts
//     the following word ("ABCId" -> "abc_id",
//     "XMLHttpID" -> "xml_http_id"),
//   - every remaining single uppercase letter is prefixed with an
//     underscore and lower-cased.
//
// One leading and one trailing underscore produced by the conversion are
// stripped unless the rewritten identifier itself started or ended with an
// underscore. The function is pure and idempotent for snake_case input.
func ToColumnName(identifier string, rules []RewriteRule, snakeCase bool) string {
	s := identifier
	for _, r := range rules {
		s = r.apply(s)
	}
	if !snakeCase {
		return s
	}
	return toSnakeCase(s)
}

func toSnakeCase(s string) string {
	t := s
	if m := trailingAcronymRe.FindString(t); m != "" {
		t = t[:len(t)-len(m)] + "_" + strings.ToLower(m)
	}
	t = acronymRe.ReplaceAllStringFunc(t, func(m string) string {
		return "_" + strings.ToLower(m[:len(m)-1]) + "_" + strings.ToLower(m[len(m)-1:])
	})
	t = upperRe.ReplaceAllStringFunc(t, func(m string) string {
		return "_" + strings.ToLower(m)
	})
	t = strings.TrimPrefix(t, "_")
	t = strings.TrimSuffix(t, "_")
	if strings.HasPrefix(s, "_") {
		t = "_" + t
	}
	if strings.HasSuffix(s, "_") {
		t += "_"
	}
	return t
}
