package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/corpusgen/pen/config"
	"github.com/corpusgen/pen/token"
	"github.com/corpusgen/pen/tokenize"
)

func testSettings() config.Settings {
	return config.Settings{
		Tokeniser: config.TokeniserConfig{Kind: tokenize.RegexSplit, Pattern: `\s+`},
		Shatter:   tokenize.DefaultShatteringOptions(),
		Pen: config.PenConfig{
			ComparisonType: token.Ordinal,
			SentinelToken:  "",
			Intern:         false,
		},
		Render: config.RenderConfig{
			RelevantTokens: 2,
			MaxTokens:      5,
			HasSeed:        true,
			Seed:           1,
			HasFromPos:     true,
			FromPosition:   0,
		},
	}
}

func TestBuildPen(t *testing.T) {
	p, err := BuildPen(testSettings(), "the quick brown fox")
	if err != nil {
		t.Fatalf("BuildPen: %v", err)
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestJoinTokensWordLevel(t *testing.T) {
	toks := []token.Token{token.New("a"), token.New("b")}
	if got := joinTokens(toks, tokenize.RegexSplit); got != "a b" {
		t.Errorf("joinTokens = %q, want %q", got, "a b")
	}
}

func TestJoinTokensCharLevel(t *testing.T) {
	toks := []token.Token{token.New("a"), token.New("b")}
	if got := joinTokens(toks, tokenize.CharSplit); got != "ab" {
		t.Errorf("joinTokens = %q, want %q", got, "ab")
	}
}

func TestRenderWritesOutput(t *testing.T) {
	settings := testSettings()
	var buf bytes.Buffer

	dir := t.TempDir()
	path := dir + "/corpus.txt"
	writeFile(t, path, "the quick brown fox the quick")

	err := Render(context.Background(), settings, RenderOptions{File: path}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected non-empty render output")
	}
}

func TestQueryCount(t *testing.T) {
	settings := testSettings()
	var buf bytes.Buffer

	dir := t.TempDir()
	path := dir + "/corpus.txt"
	writeFile(t, path, "a b a b a")

	opts := QueryOptions{File: path, Op: OpCount, Sample: []string{"a"}}
	if err := Query(context.Background(), settings, opts, &buf); err != nil {
		t.Fatalf("Query: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "3" {
		t.Errorf("output = %q, want %q", buf.String(), "3\n")
	}
}

func TestQueryUnknownOp(t *testing.T) {
	settings := testSettings()
	var buf bytes.Buffer

	dir := t.TempDir()
	path := dir + "/corpus.txt"
	writeFile(t, path, "a b c")

	opts := QueryOptions{File: path, Op: QueryOp("bogus"), Sample: []string{"a"}}
	if err := Query(context.Background(), settings, opts, &buf); err == nil {
		t.Error("expected an error for an unknown query operation")
	}
}

func TestLoadCorpusTextRequiresFileOrSource(t *testing.T) {
	settings := testSettings()
	if _, err := LoadCorpusText(context.Background(), settings, ""); err == nil {
		t.Error("expected an error when neither --file nor a WebSource base address is set")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
