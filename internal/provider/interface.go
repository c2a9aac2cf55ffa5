package provider

import "context"

// Summarizer wraps one LLM backend behind a uniform call signature.
type Summarizer interface {
	Name() string
	GenerateSummary(ctx context.Context, content string, maxLength int, promptTemplate string) (string, error)
}
