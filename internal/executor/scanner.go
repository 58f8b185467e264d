// Package executor drives the scan pipeline: read each file, summarize its
// resource declarations, and fold the per-file totals into a grand total.
//
// Because totals combine by commutative, associative addition, files can be
// summarized in parallel without affecting the result. Concurrency is
// bounded by a semaphore; per-file read failures are logged and skipped,
// never fatal.
package executor

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/harrison/kubesum/internal/models"
	"github.com/harrison/kubesum/internal/parser"
)

// Logger receives per-file scan events. Implementations must be safe for
// concurrent use.
type Logger interface {
	LogFileTotals(path string, totals models.ResourceTotals)
	LogSkippedFile(path string, err error)
}

// Scanner summarizes a set of files into one ResourceTotals.
type Scanner struct {
	logger         Logger
	maxConcurrency int
}

// NewScanner creates a Scanner. maxConcurrency values below 1 are treated
// as 1 (serial scanning). logger may be nil.
func NewScanner(logger Logger, maxConcurrency int) *Scanner {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Scanner{
		logger:         logger,
		maxConcurrency: maxConcurrency,
	}
}

// fileResult carries one file's outcome from a worker to the fold.
type fileResult struct {
	totals models.ResourceTotals
	read   bool
}

// Scan reads and summarizes every file, returning the folded grand total
// and the number of files successfully read. Unreadable files are skipped.
// Scan returns early with ctx's error if the context is cancelled before
// all files have been launched; files already in flight still complete.
func (s *Scanner) Scan(ctx context.Context, files []string) (models.ResourceTotals, int, error) {
	maxConcurrency := s.maxConcurrency
	if maxConcurrency > len(files) && len(files) > 0 {
		maxConcurrency = len(files)
	}

	semaphore := make(chan struct{}, maxConcurrency)
	resultsCh := make(chan fileResult, len(files))

	var wg sync.WaitGroup
	var launchErr error

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			launchErr = err
			break
		}

		// Check context again before acquiring a slot to avoid blocking on a
		// cancelled context.
		select {
		case <-ctx.Done():
			launchErr = ctx.Err()
		case semaphore <- struct{}{}:
		}
		if launchErr != nil {
			break
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			resultsCh <- s.scanFile(path)
		}(path)
	}

	wg.Wait()
	close(resultsCh)

	var grand models.ResourceTotals
	filesRead := 0
	for r := range resultsCh {
		if !r.read {
			continue
		}
		grand = grand.Add(r.totals)
		filesRead++
	}

	if launchErr != nil {
		return grand, filesRead, fmt.Errorf("scan interrupted: %w", launchErr)
	}
	return grand, filesRead, nil
}

// scanFile reads and summarizes a single file. Read failures (permissions,
// concurrent deletion) produce an empty result rather than an error.
func (s *Scanner) scanFile(path string) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if s.logger != nil {
			s.logger.LogSkippedFile(path, err)
		}
		return fileResult{}
	}

	totals := parser.Summarize(string(data))
	if s.logger != nil {
		s.logger.LogFileTotals(path, totals)
	}
	return fileResult{totals: totals, read: true}
}
