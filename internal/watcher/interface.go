package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly discovered Markdown file. The return value
// reports success; failures are expected to be logged by the handler.
type EventHandler func(ctx context.Context, filePath string) bool
