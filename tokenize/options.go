package tokenize

// ShatteringOptions controls how a Tokeniser treats empty tokens, line
// ends, and empty lines (spec §6, "Shattering options"). Its zero value
// is not the default configuration; use DefaultShatteringOptions.
type ShatteringOptions struct {
	// IgnoreEmptyTokens drops tokens that are null or empty after
	// shattering (and any transform).
	IgnoreEmptyTokens bool
	// IgnoreLineEnds suppresses the line-end token between lines.
	IgnoreLineEnds bool
	// IgnoreEmptyLines suppresses lines that produce no tokens after
	// intra-line empty-token filtering, including their line-end token.
	IgnoreEmptyLines bool
	// LineEndToken is inserted between consecutive lines when line ends
	// are not ignored. Default: "\n".
	LineEndToken string
	// EmptyLineToken is emitted for empty lines when empty lines are
	// not ignored. Default: "".
	EmptyLineToken string
}

// DefaultShatteringOptions returns the spec's default configuration:
// keep empty tokens, keep line ends (as "\n"), keep empty lines (as "").
func DefaultShatteringOptions() ShatteringOptions {
	return ShatteringOptions{
		LineEndToken:   "\n",
		EmptyLineToken: "",
	}
}
