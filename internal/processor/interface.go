package processor

import (
	"context"

	"github.com/nguyentantai21042004/articlegpt/internal/provider"
)

// Processor rewrites a single Markdown file with a generated summary.
// Process never propagates errors: failures are logged and reported as false.
type Processor interface {
	Process(ctx context.Context, path string) bool
}

// ModelSource resolves the currently active summarizer.
type ModelSource interface {
	Active() (provider.Summarizer, error)
}
