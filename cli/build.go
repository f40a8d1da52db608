package cli

import (
	"strings"

	"github.com/corpusgen/pen/config"
	"github.com/corpusgen/pen/pen"
	"github.com/corpusgen/pen/token"
	"github.com/corpusgen/pen/tokenize"
)

// BuildPen tokenises text according to settings.Tokeniser/Shatter and
// assembles a Pen from the result (spec.md §4.6, first constructor).
func BuildPen(settings config.Settings, text string) (*pen.Pen, error) {
	tokenizer, err := tokenize.NewFromKind(settings.Tokeniser.Kind, settings.Tokeniser.Pattern, settings.Shatter)
	if err != nil {
		return nil, err
	}

	toks := tokenizer.Tokenize(text)

	builder := pen.NewBuilder(toks).
		Relation(settings.Pen.ComparisonType).
		Intern(settings.Pen.Intern)
	if settings.Pen.SentinelToken != "" {
		builder = builder.Sentinel(token.New(settings.Pen.SentinelToken))
	}

	return builder.Build()
}

// joinTokens reconstructs text from generated tokens, following the
// tokeniser's reverse-join rule: character-level splits rejoin with no
// separator, everything else rejoins with a single space (spec.md §6,
// "demo driver" scope).
func joinTokens(toks []token.Token, kind tokenize.Kind) string {
	sep := " "
	if kind == tokenize.CharSplit {
		sep = ""
	}

	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(t.String())
	}
	return b.String()
}
