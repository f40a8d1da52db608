// Package tokenize implements the Tokeniser (spec §6, C1) and its
// Shattering Options (C2): splitting an input character stream into a
// finite ordered sequence of tokens under a pluggable splitting
// strategy, then stitching per-line results together according to
// ShatteringOptions.
package tokenize

import (
	"context"
	"strings"

	"github.com/corpusgen/pen/penerr"
	"github.com/corpusgen/pen/token"
)

// Strategy shatters a single line of input into tokens. Line framing
// (line-end tokens, empty-line handling) is applied by Tokenizer, not
// by the strategy, so every strategy only needs to reason about one
// line at a time (spec §6: Random Split's parameters are explicitly
// scoped to "line length").
type Strategy interface {
	Shatter(line string) []token.Token
}

// Tokenizer drives a Strategy over a whole document, line by line,
// applying ShatteringOptions between and within lines.
type Tokenizer struct {
	kind     Kind
	strategy Strategy
	opts     ShatteringOptions
}

// New constructs a Tokenizer from an already-built Strategy. Use the
// strategy-specific constructors (NewRegexSplit, NewCharSplit, ...) to
// build strategy first.
func New(kind Kind, strategy Strategy, opts ShatteringOptions) *Tokenizer {
	return &Tokenizer{kind: kind, strategy: strategy, opts: opts}
}

// Kind reports the splitting strategy this Tokenizer was built with.
func (t *Tokenizer) Kind() Kind {
	return t.kind
}

// Tokenize is the synchronous form (spec §6): it always runs to
// completion and never reports OperationCancelled.
func (t *Tokenizer) Tokenize(text string) []token.Token {
	toks, _ := t.shatter(context.Background(), text)
	return toks
}

// TokenizeContext is the asynchronous form (spec §6): identical
// results to Tokenize, but aborts with an OperationCancelled error if
// ctx is done before the document is fully shattered.
func (t *Tokenizer) TokenizeContext(ctx context.Context, text string) ([]token.Token, error) {
	return t.shatter(ctx, text)
}

func (t *Tokenizer) shatter(ctx context.Context, text string) ([]token.Token, error) {
	lines := splitLines(text)

	var out []token.Token
	for i, line := range lines {
		select {
		case <-ctx.Done():
			return nil, penerr.Wrap(penerr.OperationCancelled, ctx.Err(), "tokenize cancelled at line %d", i)
		default:
		}

		toks := t.strategy.Shatter(line)
		if t.opts.IgnoreEmptyTokens {
			toks = filterEmpty(toks)
		}

		if len(toks) == 0 {
			if t.opts.IgnoreEmptyLines {
				continue
			}
			toks = []token.Token{token.New(t.opts.EmptyLineToken)}
		}

		out = append(out, toks...)

		if i != len(lines)-1 && !t.opts.IgnoreLineEnds {
			out = append(out, token.New(t.opts.LineEndToken))
		}
	}
	return out, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

func filterEmpty(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.IsAbsent() {
			continue
		}
		if v, ok := t.Value(); ok && v == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
