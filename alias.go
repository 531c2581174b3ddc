package sqlsyntax

import (
	"strconv"
	"strings"
)

// ShortenedName reduces a column name to a compact alias that is unique
// within the given sibling columns.
//
// The name is reduced to letters and underscores (with "x" substituted when
// nothing remains), then shortened to the first letter of each
// underscore-separated segment ("user_id" -> "ui"). When several siblings
// shorten to the same form, the siblings are scanned in order and a
// counter, incremented for every earlier colliding sibling, is appended as
// a numeric suffix so each source name receives a distinct, order-stable
// alias.
//
// The name must be a member of columns; an InternalError is returned when
// the scan never reaches it.
func ShortenedName(name string, columns []string) (string, error) {
	short := shorten(alphabetOnly(name))
	collisions := 0
	for _, c := range columns {
		if shorten(alphabetOnly(c)) == short {
			collisions++
		}
	}
	if collisions <= 1 {
		return short, nil
	}
	n := 1
	for _, c := range columns {
		if c == name {
			return short + strconv.Itoa(n), nil
		}
		if shorten(alphabetOnly(c)) == short {
			n++
		}
	}
	return "", NewInternalError("counting alias number failed: " + name + " is not among its sibling columns")
}

// alphabetOnly drops every character that is not a letter or an underscore.
func alphabetOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}

// shorten keeps the first character of each underscore-separated segment.
func shorten(s string) string {
	var b strings.Builder
	for _, seg := range strings.Split(s, "_") {
		if seg != "" {
			b.WriteByte(seg[0])
		}
	}
	return b.String()
}
