package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/corpusgen/pen/config"
	"github.com/corpusgen/pen/token"
)

// QueryOp names one of the query-surface operations exposed by the
// query command (spec.md §4.4, C6 Query Surface).
type QueryOp string

const (
	OpPositionsOf QueryOp = "positions-of"
	OpFirst       QueryOp = "first"
	OpLast        QueryOp = "last"
	OpCount       QueryOp = "count"
)

// QueryOptions holds the query command's invocation-specific inputs.
type QueryOptions struct {
	File    string
	Op      QueryOp
	Sample  []string
	Verbose bool
}

// Query builds a Pen from the configured corpus and answers opts.Op
// against the sample, writing a single-line result to out.
func Query(ctx context.Context, settings config.Settings, opts QueryOptions, out io.Writer) error {
	requestID := uuid.New()

	text, err := LoadCorpusText(ctx, settings, opts.File)
	if err != nil {
		return err
	}

	p, err := BuildPen(settings, text)
	if err != nil {
		return fmt.Errorf("cli: build pen: %w", err)
	}

	sample := make(token.Sample, len(opts.Sample))
	for i, w := range opts.Sample {
		sample[i] = token.New(w)
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "[%s] querying %s over sample %q\n", requestID, opts.Op, strings.Join(opts.Sample, " "))
	}

	switch opts.Op {
	case OpPositionsOf:
		positions := p.PositionsOf(sample)
		sort.Ints(positions)
		fmt.Fprintln(out, formatInts(positions))
	case OpFirst:
		fmt.Fprintln(out, p.FirstPositionOf(sample))
	case OpLast:
		fmt.Fprintln(out, p.LastPositionOf(sample))
	case OpCount:
		fmt.Fprintln(out, p.Count(sample))
	default:
		return fmt.Errorf("cli: unknown query operation %q", opts.Op)
	}

	return nil
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, " ")
}
