// Package cli implements the demo driver commands (spec.md §6's "render"
// and "query" CLI surface): building a Pen from a tokenised file or URL,
// streaming generated tokens, and answering ad hoc query-surface
// questions against it.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/corpusgen/pen/config"
	"github.com/corpusgen/pen/source"
)

const fetchTimeout = 30 * time.Second

// LoadCorpusText resolves the corpus text for a command invocation. A
// non-empty path reads a local file; otherwise it falls back to the
// WebSource configured in settings (spec.md §6's Text:WebSource:* keys).
func LoadCorpusText(ctx context.Context, settings config.Settings, path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("cli: read corpus file %s: %w", path, err)
		}
		return string(data), nil
	}

	if settings.Source.BaseAddress == "" {
		return "", fmt.Errorf("cli: no --file given and PEN_WEBSOURCE_BASE_ADDRESS is unset")
	}

	ws := source.NewWebSource(fetchTimeout)
	return ws.Fetch(ctx, settings.Source.BaseAddress, settings.Source.RequestURI)
}
