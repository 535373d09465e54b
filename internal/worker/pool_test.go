package worker

import (
	"bytes"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/processing"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Script: item.Script, Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Script: item.Script, Index: item.Index}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{
				Script: &processing.Script{Name: "test"},
				Index:  i,
			})
		}
		pool.Close()
	}()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolStop verifies that items submitted after Stop are drained
// without being processed.
func TestPoolStop(t *testing.T) {
	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(20))

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Start()
	for i := 0; i < 20; i++ {
		pool.Submit(WorkItem{Script: &processing.Script{}, Index: i})
	}
	go pool.Close()

	if got := collectResults(pool); got != 0 {
		t.Errorf("results = %d after Stop; want 0", got)
	}
	if got := atomic.LoadInt32(&processed); got != 0 {
		t.Errorf("processed = %d after Stop; want 0", got)
	}
}

// TestPoolStopAfterKeepsLowest verifies repeated stops keep the lowest index.
func TestPoolStopAfterKeepsLowest(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc())
	pool.stopAfter(7)
	pool.stopAfter(3)
	pool.stopAfter(5)

	for _, tt := range []struct {
		index int
		want  bool
	}{{2, false}, {3, false}, {4, true}, {6, true}} {
		if got := pool.skipped(tt.index); got != tt.want {
			t.Errorf("skipped(%d) = %v; want %v", tt.index, got, tt.want)
		}
	}
}

// TestPoolRunStopOnError verifies that with WithStopOnError the results
// end at the first failing script in input order, however the workers
// are scheduled.
func TestPoolRunStopOnError(t *testing.T) {
	failAt := map[int]bool{3: true, 6: true}
	processFunc := func(item WorkItem) ProcessResult {
		// Later scripts finish first.
		time.Sleep(time.Duration(10-item.Index) * time.Millisecond)
		result := ProcessResult{Script: item.Script, Index: item.Index}
		if failAt[item.Index] {
			result.Error = errors.New("failed")
		}
		return result
	}

	scripts := make([]*processing.Script, 10)
	for i := range scripts {
		scripts[i] = &processing.Script{Name: string(rune('a' + i))}
	}

	for _, workers := range []int{1, 4, 10} {
		pool := NewPoolWithOptions(processFunc, WithWorkers(workers), WithStopOnError(true))
		results := pool.Run(scripts)
		if len(results) != 4 {
			t.Fatalf("workers=%d: results = %d; want 4", workers, len(results))
		}
		for i, result := range results {
			if result.Index != i {
				t.Errorf("workers=%d: results[%d].Index = %d", workers, i, result.Index)
			}
		}
		if results[3].Error == nil {
			t.Errorf("workers=%d: last result should carry the failure", workers)
		}
	}

	results := NewPoolWithOptions(processFunc, WithWorkers(4)).Run(scripts)
	if len(results) != len(scripts) {
		t.Errorf("without stop-on-error results = %d; want %d", len(results), len(scripts))
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Script: item.Script, Index: item.Index}
	}

	pool := NewPoolWithOptions(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Script: &processing.Script{}, Index: i})
	}

	go pool.Close()

	// Collect all result indices
	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPoolWithOptions(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Script: &processing.Script{}, Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc())
		if pool.numWorkers != 1 {
			t.Errorf("default workers = %d; want 1", pool.numWorkers)
		}
		if pool.bufferSize != 10 {
			t.Errorf("default bufferSize = %d; want 10", pool.bufferSize)
		}
	})

	t.Run("with workers", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(4))
		if pool.numWorkers != 4 {
			t.Errorf("numWorkers = %d; want 4", pool.numWorkers)
		}
	})

	t.Run("with buffer size", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithBufferSize(50))
		if pool.bufferSize != 50 {
			t.Errorf("bufferSize = %d; want 50", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(100))
		if pool.numWorkers != 8 {
			t.Errorf("numWorkers = %d; want 8", pool.numWorkers)
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid workers ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(0))
		if pool.numWorkers != 1 {
			t.Errorf("numWorkers = %d; want 1 (default)", pool.numWorkers)
		}
	})

	t.Run("invalid buffer size ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithBufferSize(-5))
		if pool.bufferSize != 10 {
			t.Errorf("bufferSize = %d; want 10 (default)", pool.bufferSize)
		}
	})

	t.Run("functional with options", func(t *testing.T) {
		var processed int32
		pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(5))
		pool.Start()

		const numItems = 5
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Script: &processing.Script{}, Index: i})
		}

		go pool.Close()
		collectResults(pool)

		if got := atomic.LoadInt32(&processed); got != numItems {
			t.Errorf("processed = %d; want %d", got, numItems)
		}
	})
}

// TestPoolRunOrder verifies Run returns results in submission order even
// when later scripts finish first.
func TestPoolRunOrder(t *testing.T) {
	delayFunc := func(item WorkItem) ProcessResult {
		time.Sleep(time.Duration(10-item.Index) * time.Millisecond)
		return ProcessResult{Script: item.Script, Index: item.Index}
	}

	scripts := make([]*processing.Script, 10)
	for i := range scripts {
		scripts[i] = &processing.Script{Name: string(rune('a' + i))}
	}

	results := NewPoolWithOptions(delayFunc, WithWorkers(4), WithBufferSize(4)).Run(scripts)
	if len(results) != len(scripts) {
		t.Fatalf("results = %d; want %d", len(results), len(scripts))
	}
	for i, result := range results {
		if result.Index != i || result.Script != scripts[i] {
			t.Errorf("results[%d] = index %d (%s); want %d (%s)",
				i, result.Index, result.Script.Name, i, scripts[i].Name)
		}
	}
}

func mustParse(t *testing.T, name, src string) *processing.Script {
	t.Helper()
	script, err := processing.ParseScript(strings.NewReader(src), name)
	if err != nil {
		t.Fatalf("ParseScript(%s): %v", name, err)
	}
	return script
}

// TestReplayFunc replays real scripts in parallel and checks that each
// result carries its own board, output and log.
func TestReplayFunc(t *testing.T) {
	var sharedLog bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithShowBoard(false).
		WithVerbosity(config.Commentary).
		WithLogFile(&sharedLog).
		Build()

	scripts := []*processing.Script{
		mustParse(t, "mate", "f2 f3\ne7 e5\ng2 g4\nd8 h4\n"),
		mustParse(t, "open", "e2 e4\nfen\n"),
		mustParse(t, "bad", "e2 e5\n"),
	}

	results := NewPoolWithOptions(ReplayFunc(cfg), WithWorkers(3)).Run(scripts)
	if len(results) != 3 {
		t.Fatalf("results = %d; want 3", len(results))
	}

	if got := results[0].Analysis.Status; got != engine.Checkmate {
		t.Errorf("mate status = %v; want checkmate", got)
	}
	if !strings.Contains(string(results[0].Output), "Checkmate!") {
		t.Errorf("mate output = %q", results[0].Output)
	}

	open := results[1].Analysis.FinalBoard
	if open.Get(chess.Sq("e4")) != chess.W(chess.Pawn) || open.ToMove != chess.Black {
		t.Error("open script did not end after 1.e4")
	}
	if !strings.Contains(string(results[1].Output), "b KQkq - 0 1") {
		t.Errorf("open output = %q", results[1].Output)
	}

	if results[2].Analysis.Rejected != 1 {
		t.Errorf("bad rejected = %d; want 1", results[2].Analysis.Rejected)
	}
	if !strings.Contains(string(results[2].Log), "e2-e5") {
		t.Errorf("bad log = %q; want the rejected move", results[2].Log)
	}

	if sharedLog.Len() != 0 {
		t.Errorf("shared log written from workers: %q", sharedLog.String())
	}
}
