package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/corpusgen/pen/config"
	"github.com/corpusgen/pen/render"
)

// RenderOptions holds the render command's invocation-specific inputs,
// on top of the env-driven config.Settings.
type RenderOptions struct {
	File    string
	Verbose bool
}

// Render builds a Pen from the configured corpus and streams generated
// tokens to out, stopping at settings.Render.MaxTokens or when the
// Renderer reaches the sentinel or past-end stop (spec.md §4.5).
func Render(ctx context.Context, settings config.Settings, opts RenderOptions, out io.Writer) error {
	requestID := uuid.New()

	text, err := LoadCorpusText(ctx, settings, opts.File)
	if err != nil {
		return err
	}

	p, err := BuildPen(settings, text)
	if err != nil {
		return fmt.Errorf("cli: build pen: %w", err)
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "[%s] corpus loaded: %d tokens\n", requestID, p.Len())
	}

	picker := render.DefaultPicker()
	if settings.Render.HasSeed {
		picker = render.NewSeededPicker(settings.Render.Seed)
	}

	var from *int
	if settings.Render.HasFromPos {
		fromPos := settings.Render.FromPosition
		from = &fromPos
	}

	it := p.Render(settings.Render.RelevantTokens, picker, from)
	toks, err := render.Collect(it, settings.Render.MaxTokens)
	if err != nil {
		return fmt.Errorf("cli: render: %w", err)
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "[%s] generated %d tokens\n", requestID, len(toks))
	}

	_, err = fmt.Fprintln(out, joinTokens(toks, settings.Tokeniser.Kind))
	return err
}
