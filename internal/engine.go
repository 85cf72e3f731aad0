package internal

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// Config fixes the matching strategy and worker count for an Engine.
type Config struct {
	IgnoreCase bool
	Regex      bool
	Workers    int // <= 0 means derive from host parallelism
}

// Engine partitions a file list across a fixed set of workers and
// merges their matches in worker order. The worker count is resolved
// once at construction and never changes.
type Engine struct {
	ignoreCase bool
	useRegex   bool
	workers    int
	diag       Reporter
}

// NewEngine resolves the worker count: cfg.Workers when positive,
// otherwise the host's reported parallelism with a floor of one.
func NewEngine(cfg Config, diag Reporter) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	return &Engine{
		ignoreCase: cfg.IgnoreCase,
		useRegex:   cfg.Regex,
		workers:    workers,
		diag:       diag,
	}
}

// Workers reports the resolved worker count.
func (e *Engine) Workers() int { return e.workers }

// chunkRange is one worker's contiguous slice of the file list.
type chunkRange struct {
	start, end int // half-open
}

// partition splits [0,n) into at most w contiguous ranges of
// ceil(n/w) files each. Ranges past the end of the list are not
// produced, so with more workers than files the tail workers simply
// get nothing.
func partition(n, w int) []chunkRange {
	if n == 0 || w <= 0 {
		return nil
	}
	chunkSize := (n + w - 1) / w
	var ranges []chunkRange
	for i := 0; i < w; i++ {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := start + chunkSize
		if end > n {
			end = n
		}
		ranges = append(ranges, chunkRange{start: start, end: end})
	}
	return ranges
}

// Search scans every file for query and returns all matches, ordered
// by the position of each file in the input list and by line number
// within a file. The matcher is built once per call; an invalid regex
// query is the only error. Each worker owns its result buffer
// exclusively until the single-threaded merge, so the parallel phase
// needs no locking.
func (e *Engine) Search(files []string, query string) ([]Match, error) {
	matcher, err := NewMatcher(query, e.ignoreCase, e.useRegex)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		e.diag.Report("No files to search")
		return nil, nil
	}

	ranges := partition(len(files), e.workers)
	if idle := e.workers - len(ranges); idle > 0 {
		e.diag.Report(fmt.Sprintf("%d of %d workers have no files to process", idle, e.workers))
	}

	pool, err := ants.NewPool(len(ranges))
	if err != nil {
		return nil, fmt.Errorf("pool: %w", err)
	}
	defer pool.Release()

	locals := make([][]Match, len(ranges))
	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			for _, path := range files[r.start:r.end] {
				if found := scanFile(path, matcher, e.diag); len(found) > 0 {
					locals[i] = append(locals[i], found...)
				}
			}
		}); err != nil {
			wg.Done()
			logrus.WithError(err).Error("submit chunk")
		}
	}
	wg.Wait()

	total := 0
	for _, l := range locals {
		total += len(l)
	}
	merged := make([]Match, 0, total)
	for _, l := range locals {
		merged = append(merged, l...)
	}
	return merged, nil
}
