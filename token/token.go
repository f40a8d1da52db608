// Package token provides the data model for corpus tokens: the nullable
// string value itself, the comparison relations tokens are ordered under,
// and the sample/window views the indexing and rendering layers match
// against.
package token

// Token is a nullable string. The zero value is the absent token, which
// compares strictly less than every present string under every relation.
type Token struct {
	valid bool
	value string
}

// Absent is the null-equivalent token.
var Absent = Token{}

// New returns a present token wrapping value.
func New(value string) Token {
	return Token{valid: true, value: value}
}

// IsAbsent reports whether t is the null-equivalent token.
func (t Token) IsAbsent() bool {
	return !t.valid
}

// Value returns the underlying string and whether t is present.
func (t Token) Value() (string, bool) {
	return t.value, t.valid
}

// String returns the underlying string, or "" for the absent token.
// Use Value when absent-vs-empty-string must be distinguished.
func (t Token) String() string {
	return t.value
}
