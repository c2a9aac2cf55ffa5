package batch

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/articlegpt/internal/logger"
	"github.com/nguyentantai21042004/articlegpt/internal/processor"
)

type implRunner struct {
	proc       processor.Processor
	logger     logger.Logger
	maxWorkers int
	limiter    *rate.Limiter

	mu     sync.Mutex
	failed []string
}

// New creates a Runner that processes at most maxWorkers files at once,
// paced so that requests start at most once per interval.
func New(proc processor.Processor, log logger.Logger, maxWorkers int, interval time.Duration) Runner {
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &implRunner{
		proc:       proc,
		logger:     log,
		maxWorkers: maxWorkers,
		limiter:    rate.NewLimiter(limit, 1),
	}
}
