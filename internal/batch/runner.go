package batch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Run scans dir for Markdown files and dispatches them all. Every outcome
// is recorded; the batch never aborts because one file failed.
func (r *implRunner) Run(ctx context.Context, dir string) (*Result, error) {
	files, err := discoverMarkdownFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	r.mu.Lock()
	r.failed = nil
	r.mu.Unlock()

	if len(files) == 0 {
		r.logger.Info(ctx, "No Markdown files found in %s", dir)
		return &Result{}, nil
	}

	r.logger.Info(ctx, "Found %d Markdown files. Starting processing...", len(files))
	return r.dispatch(ctx, files), nil
}

// RetryFailed re-runs exactly the previously failed subset. The subset is
// cleared up front and repopulated with whatever fails again.
func (r *implRunner) RetryFailed(ctx context.Context) *Result {
	r.mu.Lock()
	files := r.failed
	r.failed = nil
	r.mu.Unlock()

	if len(files) == 0 {
		return &Result{}
	}

	r.logger.Info(ctx, "Retrying %d failed files...", len(files))
	return r.dispatch(ctx, files)
}

func (r *implRunner) FailedFiles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failed...)
}

// dispatch fans the files out to workers, bounded by the semaphore and
// paced by the shared rate gate. ctx cancellation stops further dispatch;
// in-flight files finish.
func (r *implRunner) dispatch(ctx context.Context, files []string) *Result {
	sem := newSemaphore(r.maxWorkers)
	var wg sync.WaitGroup

	var mu sync.Mutex
	completed := 0
	var failed []string

	for i, path := range files {
		if err := r.limiter.Wait(ctx); err != nil {
			mu.Lock()
			failed = append(failed, files[i:]...)
			mu.Unlock()
			break
		}
		if err := sem.acquire(ctx); err != nil {
			mu.Lock()
			failed = append(failed, files[i:]...)
			mu.Unlock()
			break
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			ok := r.proc.Process(ctx, path)

			mu.Lock()
			if ok {
				completed++
			} else {
				failed = append(failed, path)
			}
			mu.Unlock()
		}(path)
	}

	wg.Wait()

	// Stable order so a retry pass walks the same sequence.
	sort.Strings(failed)

	r.mu.Lock()
	r.failed = failed
	r.mu.Unlock()

	result := &Result{
		Total:     len(files),
		Completed: completed,
		Failed:    len(failed),
	}

	r.logger.Info(ctx, "Processing complete: %d succeeded, %d failed", result.Completed, result.Failed)
	return result
}

// discoverMarkdownFiles recursively lists all .md files under dir.
func discoverMarkdownFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
