// Package worker provides a worker pool for replaying move scripts in
// parallel. Every script gets its own game, so workers share no boards.
package worker

import (
	"bytes"
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/processing"
)

// WorkItem represents a script to be replayed.
type WorkItem struct {
	Script *processing.Script
	Index  int // Original index for tracking
}

// ProcessResult represents the result of replaying a script.
type ProcessResult struct {
	Script   *processing.Script
	Index    int
	Analysis *processing.ScriptAnalysis // may be nil if the replay could not start
	Output   []byte                     // everything the replay printed
	Log      []byte                     // diagnostics written through Config.Logf
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ReplayFunc returns a ProcessFunc that replays each script under its own
// copy of cfg. Output and log text are buffered per script so the caller
// can print them in input order.
func ReplayFunc(cfg *config.Config) ProcessFunc {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return func(item WorkItem) ProcessResult {
		var out, log bytes.Buffer
		local := *cfg
		local.OutputFile = &out
		local.LogFile = &log

		analysis, err := processing.ReplayScript(item.Script, &local, &out)
		return ProcessResult{
			Script:   item.Script,
			Index:    item.Index,
			Analysis: analysis,
			Output:   out.Bytes(),
			Log:      log.Bytes(),
			Error:    err,
		}
	}
}

// Pool manages a pool of workers for parallel script replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	stopOnError bool
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopIndex   int64 // Atomic; items with a higher index are skipped
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError makes Run stop at the first failed script in input
// order: later scripts are skipped and their results dropped, so the
// outcome matches a sequential replay.
func WithStopOnError(enabled bool) PoolOption {
	return func(p *Pool) {
		p.stopOnError = enabled
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
		stopIndex:   math.MaxInt64,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.skipped(item.Index) {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to skip every item they have not started.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopAfter(-1)
}

// stopAfter skips items whose index is above index. Repeated calls keep
// the lowest index.
func (p *Pool) stopAfter(index int) {
	for {
		cur := atomic.LoadInt64(&p.stopIndex)
		if int64(index) >= cur || atomic.CompareAndSwapInt64(&p.stopIndex, cur, int64(index)) {
			return
		}
	}
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt64(&p.stopIndex) != math.MaxInt64
}

func (p *Pool) skipped(index int) bool {
	return int64(index) > atomic.LoadInt64(&p.stopIndex)
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run submits every script, waits for all results and returns them in
// submission order. With WithStopOnError the results end at the first
// failed script.
func (p *Pool) Run(scripts []*processing.Script) []ProcessResult {
	p.Start()
	go func() {
		for i, script := range scripts {
			if p.skipped(i) {
				break
			}
			p.Submit(WorkItem{Script: script, Index: i})
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(scripts))
	for result := range p.Results() {
		if p.stopOnError && result.Error != nil {
			p.stopAfter(result.Index)
		}
		results = append(results, result)
	}

	if p.IsStopped() {
		kept := results[:0]
		for _, result := range results {
			if !p.skipped(result.Index) {
				kept = append(kept, result)
			}
		}
		results = kept
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
