package batch

import "context"

// Runner executes one full summarization pass over a directory tree and
// supports retrying only the files that failed.
type Runner interface {
	// Run discovers Markdown files under dir and processes them all.
	Run(ctx context.Context, dir string) (*Result, error)
	// RetryFailed re-processes exactly the files that failed previously.
	RetryFailed(ctx context.Context) *Result
	// FailedFiles returns the stable list of paths that failed last pass.
	FailedFiles() []string
}

// Result summarizes one batch pass.
type Result struct {
	Total     int
	Completed int
	Failed    int
}

// CanRetry reports whether a retry pass would do anything.
func (r *Result) CanRetry() bool {
	return r.Failed > 0
}
